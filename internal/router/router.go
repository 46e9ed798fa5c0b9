package router

import (
	"database/sql"
	"net/http"

	mem "pet-match/internal/adapters/storage/memory"
	pg "pet-match/internal/adapters/storage/postgres"
	"pet-match/internal/domain/favorites"
	"pet-match/internal/domain/matches"
	"pet-match/internal/domain/matching"
	"pet-match/internal/domain/profiles"
	"pet-match/internal/middleware"
	"pet-match/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: nil desactiva el request logging.
	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		profileRepo  profiles.Repository
		matchRepo    matches.Repository
		favoriteRepo favorites.Repository
	)

	if opts.DB != nil {
		profileRepo = pg.NewProfilesRepo(opts.DB)
		matchRepo = pg.NewMatchesRepo(opts.DB)
		favoriteRepo = pg.NewFavoritesRepo(opts.DB)
	} else {
		profileRepo = mem.NewProfileRepo()
		matchRepo = mem.NewMatchRepo()
		favoriteRepo = mem.NewFavoriteRepo()
	}

	// Services por módulo
	profilesSvc := profiles.NewService(profileRepo)
	matchesSvc := matches.NewService(matchRepo, profilesSvc)
	favoritesSvc := favorites.NewService(favoriteRepo, profilesSvc)
	finder := matching.NewFinder(profileRepo, matchRepo)

	// Rutas por módulo
	profiles.RegisterRoutes(r, profilesSvc)
	matching.RegisterRoutes(r, finder, profilesSvc)
	matches.RegisterRoutes(r, matchesSvc)
	favorites.RegisterRoutes(r, favoritesSvc)

	return r
}
