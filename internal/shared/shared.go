package shared

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chapterly/api/internal/catalog"
	"github.com/chapterly/api/internal/config"
	"github.com/chapterly/api/internal/identity"
	"github.com/chapterly/api/internal/logger"
	"github.com/chapterly/api/internal/store"
)

type Server struct {
	Router   *chi.Mux
	Logger   logger.Logger
	Store    store.Store
	Verifier identity.Verifier
	Catalog  catalog.Client
	Config   *config.Config
}

var Validate = validator.New()
