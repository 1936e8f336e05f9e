package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/pkg/logger"
	"chat-workspace-be/internal/repository/memory"
	"chat-workspace-be/internal/repository/unitofwork"
)

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type failingPublisher struct{}

func (failingPublisher) Publish(ctx context.Context, payload []byte) error {
	return errors.New("bus down")
}

// recordingLogger keeps warnings so tests can assert on them.
type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Info(module, message string, details map[string]interface{})  {}
func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.warns = append(l.warns, message)
}
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Sync() error { return nil }

func newTemplateFixture(t *testing.T) (ITemplateService, *capturingPublisher, *memory.CollectionsCache, unitofwork.RepositoryFactory) {
	t.Helper()
	uowFactory := newTestFactory(t)
	publisher := &capturingPublisher{}
	cache := memory.NewCollectionsCache(5 * time.Minute)
	svc := NewTemplateService(uowFactory, publisher, cache, nil, logger.NewNop())
	return svc, publisher, cache, uowFactory
}

func TestCollectionDeleteCascadesToTemplates(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTemplateFixture(t)

	collection, err := svc.CreateCollection(ctx, 1, &dto.CreateCollectionRequest{Name: "prompts"})
	require.NoError(t, err)

	template, err := svc.CreateTemplate(ctx, 1, collection.Uuid, &dto.CreateTemplateRequest{
		Name: "summarize", Content: "Summarize:",
	})
	require.NoError(t, err)

	res, err := svc.DeleteCollection(ctx, 1, collection.Uuid)
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = svc.GetTemplate(ctx, 1, collection.Uuid, template.Id)
	requireApiStatus(t, err, 404)

	// Second delete finds nothing left to resolve.
	_, err = svc.DeleteCollection(ctx, 1, collection.Uuid)
	requireApiStatus(t, err, 404)
}

func TestTemplateOwnershipMismatchReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTemplateFixture(t)

	collection, err := svc.CreateCollection(ctx, 1, &dto.CreateCollectionRequest{Name: "mine"})
	require.NoError(t, err)
	template, err := svc.CreateTemplate(ctx, 1, collection.Uuid, &dto.CreateTemplateRequest{Name: "t"})
	require.NoError(t, err)

	_, foreignErr := svc.GetTemplate(ctx, 2, collection.Uuid, template.Id)
	requireApiStatus(t, foreignErr, 404)

	_, deleteErr := svc.DeleteTemplate(ctx, 2, collection.Uuid, template.Id)
	requireApiStatus(t, deleteErr, 404)

	// Still there for the owner.
	got, err := svc.GetTemplate(ctx, 1, collection.Uuid, template.Id)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Template.Name)
}

func TestListSharedUsesCacheUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	svc, publisher, cache, _ := newTemplateFixture(t)

	collection, err := svc.CreateCollection(ctx, 1, &dto.CreateCollectionRequest{Name: "first"})
	require.NoError(t, err)
	require.NotEmpty(t, publisher.payloads, "collection write should publish an invalidation")

	listed, err := svc.ListShared(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), listed.Total)

	// Snapshot is served from cache until something flushes it.
	cached, found := cache.Get()
	require.True(t, found)
	assert.Same(t, listed, cached)

	_, err = svc.CreateTemplate(ctx, 1, collection.Uuid, &dto.CreateTemplateRequest{Name: "late"})
	require.NoError(t, err)

	// The consumer owns the flush; simulate its effect.
	cache.Invalidate()

	relisted, err := svc.ListShared(ctx)
	require.NoError(t, err)
	require.Len(t, relisted.Collections, 1)
	assert.Len(t, relisted.Collections[0].Templates, 1)
}

func TestInvalidationPublishFailureWarnsAndSucceeds(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	cache := memory.NewCollectionsCache(5 * time.Minute)
	rec := &recordingLogger{}
	svc := NewTemplateService(uowFactory, failingPublisher{}, cache, nil, rec)

	// A broken invalidation bus costs one stale window, never the write.
	collection, err := svc.CreateCollection(ctx, 1, &dto.CreateCollectionRequest{Name: "prompts"})
	require.NoError(t, err)
	require.NotNil(t, collection)

	require.Len(t, rec.warns, 1)
	assert.Equal(t, "Failed to publish cache invalidation", rec.warns[0])
}

func TestConsumerFlushesCollectionsCache(t *testing.T) {
	cache := memory.NewCollectionsCache(5 * time.Minute)
	cache.Save(&dto.CollectionsListResponse{Total: 3})

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	consumer := NewConsumerService(pubSub, "INVALIDATE_COLLECTIONS_CACHE", cache, logger.NewNop())
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService("INVALIDATE_COLLECTIONS_CACHE", pubSub)
	require.NoError(t, publisher.Publish(context.Background(), []byte(`{"reason":"test"}`)))

	require.Eventually(t, func() bool {
		_, found := cache.Get()
		return !found
	}, 2*time.Second, 10*time.Millisecond)
}
