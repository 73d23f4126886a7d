package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/config"
	"github.com/pitabwire/frame/workerpool"

	reciteconfig "github.com/voicetyped/recite/config"
	"github.com/voicetyped/recite/gen/recite/reading/v1/readingv1connect"
	"github.com/voicetyped/recite/internal/connectutil"
	readinghandler "github.com/voicetyped/recite/internal/reading/handler"
	"github.com/voicetyped/recite/pkg/corpus"
	"github.com/voicetyped/recite/pkg/events"
	"github.com/voicetyped/recite/pkg/progress"
	progressapi "github.com/voicetyped/recite/pkg/progress/api"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadWithOIDC[reciteconfig.ReciteConfig](ctx)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	eventRef := cfg.GetEventsQueueName()
	eventURL := cfg.GetEventsQueueURL()

	serviceOpts := []frame.Option{
		frame.WithConfig(&cfg),
		frame.WithName("recite"),
		frame.WithRegisterPublisher(eventRef, eventURL),
		frame.WithWorkerPoolOptions(
			workerpool.WithPoolCount(cfg.WorkerPoolCount),
			workerpool.WithSinglePoolCapacity(cfg.WorkerPoolCapacity),
		),
	}
	if cfg.ProgressEnabled {
		serviceOpts = append(serviceOpts, frame.WithDatastore())
	}
	if cfg.AuthEnabled {
		serviceOpts = append(serviceOpts, frame.WithRegisterServerOauth2Client())
	}

	ctx, srv := frame.NewService(serviceOpts...)
	defer srv.Stop(ctx)

	pool, err := srv.WorkManager().GetPool()
	if err != nil {
		log.Fatalf("getting worker pool: %v", err)
	}

	pub := events.NewPublisher(srv.QueueManager(), "recite", eventRef)
	drain := func() { pub.Run(ctx) }
	if err := pool.Submit(ctx, drain); err != nil {
		go drain()
	}

	// --- Corpus ---
	loader := corpus.NewLoader(cfg.CorpusPath)
	if _, err := loader.Load(); err != nil {
		// Sessions opened before a successful reload see an empty corpus.
		slog.WarnContext(ctx, "loading corpus", slog.String("path", cfg.CorpusPath), slog.String("error", err.Error()))
	}
	if cfg.CorpusWatch {
		watch := func() {
			err := loader.WatchAndReload(ctx.Done(), func(c *corpus.Corpus) {
				if err := pub.Emit(ctx, events.CorpusReloaded, "", events.CorpusReloadedData{
					Path:       loader.Path(),
					TotalLines: c.TotalLines(),
				}); err != nil {
					slog.WarnContext(ctx, "corpus reload event failed", slog.String("error", err.Error()))
				}
			})
			if err != nil {
				slog.ErrorContext(ctx, "corpus watcher stopped", slog.String("error", err.Error()))
			}
		}
		if err := pool.Submit(ctx, watch); err != nil {
			go watch()
		}
	}

	// --- Reading Service ---
	readingHdlr := readinghandler.NewReadingHandler(loader, pub, cfg.MatcherOptions(), cfg.SessionTTL(), pool)

	mux := http.NewServeMux()
	restMux := http.NewServeMux()

	authenticator := srv.SecurityManager().GetAuthenticator(ctx)
	opts, err := connectutil.HandlerOptions(ctx, cfg.AuthEnabled, authenticator)
	if err != nil {
		log.Fatalf("setting up interceptors: %v", err)
	}
	path, h := readingv1connect.NewReadingServiceHandler(readingHdlr, opts...)
	mux.Handle(path, h)

	initOpts := []frame.Option{
		frame.WithHTTPHandler(connectutil.H2CHandler(mux)),
	}

	// --- Progress audit ---
	if cfg.ProgressEnabled {
		repo := progress.NewRepository(
			srv.DatastoreManager().GetPool(ctx, "__default__pool_name__"),
		)
		if err := repo.Migrate(ctx); err != nil {
			log.Fatalf("migrating progress store: %v", err)
		}
		recorder := progress.NewRecorder(repo)
		initOpts = append(initOpts, frame.WithRegisterSubscriber(eventRef+".progress", eventURL, recorder))

		progressapi.NewHandler(repo).RegisterRoutes(restMux)
		if cfg.AuthEnabled {
			mux.Handle("/api/", connectutil.AuthenticatedHTTPMiddleware(restMux, authenticator))
		} else {
			mux.Handle("/api/", restMux)
		}
	}

	readingHdlr.StartReaper(ctx)

	srv.Init(ctx, initOpts...)

	if err := srv.Run(ctx, ""); err != nil {
		log.Fatalf("service exited: %v", err)
	}
}
