package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a bound request DTO against its validate tags and
// reports the violations as a single 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		violations := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return BadRequest(strings.Join(violations, "; "))
	}
	return BadRequest(err.Error())
}
