package main

import (
	"log"
	"os"

	"chat-workspace-be/internal/model"
	"chat-workspace-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a demo workspace for local development: one user, a conversation
// with a few messages, and a starter template collection.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo workspace...")

	user := model.User{
		PrimaryEmail: "demo@example.com",
		FullName:     "Demo User",
	}
	var existing model.User
	if err := db.Where("primary_email = ?", user.PrimaryEmail).First(&existing).Error; err == nil {
		log.Printf("User '%s' already exists, nothing to do", user.PrimaryEmail)
		return
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user:", err)
	}

	chat := model.ChatConversation{
		UserId: user.Id,
		Title:  "Getting started",
	}
	if err := db.Create(&chat).Error; err != nil {
		log.Fatal("Error: Failed to create demo conversation:", err)
	}

	messages := []model.ChatMessage{
		{ChatId: chat.Id, Role: "user", Content: "What can I do in this workspace?"},
		{ChatId: chat.Id, Role: "assistant", Content: "You can keep conversations, attach files, share chats publicly, and reuse prompt templates."},
	}
	for _, m := range messages {
		if err := db.Create(&m).Error; err != nil {
			log.Fatal("Error: Failed to create demo message:", err)
		}
	}

	collection := model.UserTemplateCollection{
		Uuid:   uuid.New(),
		UserId: user.Id,
		Name:   "Starter templates",
	}
	if err := db.Create(&collection).Error; err != nil {
		log.Fatal("Error: Failed to create demo collection:", err)
	}

	templates := []model.UserTemplate{
		{CollectionUuid: collection.Uuid, Name: "Summarize", Content: "Summarize the following text:"},
		{CollectionUuid: collection.Uuid, Name: "Explain code", Content: "Explain what this code does, step by step:"},
	}
	for _, t := range templates {
		if err := db.Create(&t).Error; err != nil {
			log.Fatal("Error: Failed to create demo template:", err)
		}
	}

	log.Printf("Done. Demo user id: %d, conversation id: %d", user.Id, chat.Id)
}
