package shared

import (
	"testing"

	"github.com/chapterly/api/internal/models"
)

func TestValidateRequiredFields(t *testing.T) {
	if err := Validate.Struct(&models.HandleCreateBookRequest{Title: "Dune"}); err != nil {
		t.Errorf("expected request with title to validate: %v", err)
	}

	if err := Validate.Struct(&models.HandleCreateBookRequest{Author: "Frank Herbert"}); err == nil {
		t.Error("expected request without title to fail validation")
	}

	if err := Validate.Struct(&models.HandleCreateMemberRequest{}); err == nil {
		t.Error("expected request without name to fail validation")
	}
}
