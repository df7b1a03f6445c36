package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/history"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/issue"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/language"
	lookuprepo "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/lookup"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/phrase"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/recording"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/session"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/speaker"
	statsrepo "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/stats"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/transcriptionfile"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/blobstore"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/config"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/elan"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/metadata"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/observe"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/importer"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/lookup"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/merge"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/stats"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/sessionid"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/transcode"
)

// Deps holds the database pool and the repositories built on it. The
// server and the operator CLI build their services from it.
type Deps struct {
	Pool *pgxpool.Pool
	Tx   *postgres.TxManager

	Languages          *language.Repo
	Speakers           *speaker.Repo
	Sessions           *session.Repo
	Phrases            *phrase.Repo
	Recordings         *recording.Repo
	TranscriptionFiles *transcriptionfile.Repo
	Issues             *issue.Repo
	History            *history.Repo
	Lookup             *lookuprepo.Repo
	Stats              *statsrepo.Repo

	Metrics *observe.Metrics
	log     *slog.Logger
}

// Connect opens the database pool and builds the repositories. A nil
// metrics records nowhere.
func Connect(ctx context.Context, cfg config.DatabaseConfig, metrics *observe.Metrics, log *slog.Logger) (*Deps, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = observe.Default()
	}

	return &Deps{
		Pool:               pool,
		Tx:                 postgres.NewTxManager(pool),
		Languages:          language.New(pool),
		Speakers:           speaker.New(pool),
		Sessions:           session.New(pool),
		Phrases:            phrase.New(pool),
		Recordings:         recording.New(pool),
		TranscriptionFiles: transcriptionfile.New(pool),
		Issues:             issue.New(pool),
		History:            history.New(pool),
		Lookup:             lookuprepo.New(pool),
		Stats:              statsrepo.New(pool),
		Metrics:            metrics,
		log:                log,
	}, nil
}

// Close releases the pool.
func (d *Deps) Close() {
	d.Pool.Close()
}

// LookupService builds the bulk lookup service.
func (d *Deps) LookupService(cfg config.LookupConfig) *lookup.Service {
	return lookup.NewService(d.log, d.Languages, d.Lookup, d.Speakers, d.Phrases, d.Metrics, cfg)
}

// MergeService builds the phrase merge service.
func (d *Deps) MergeService() *merge.Service {
	return merge.NewService(d.log, d.Phrases, d.Recordings, d.Issues, d.Languages, d.History, d.Tx)
}

// StatsService builds the statistics service.
func (d *Deps) StatsService() *stats.Service {
	return stats.NewService(d.log, d.Languages, d.Stats)
}

// ImporterService builds an import over the corpus described by cfg. The
// metadata file, when set, is read now.
func (d *Deps) ImporterService(cfg config.ImportConfig) (*importer.Service, error) {
	ident := sessionid.Default()

	meta := map[domain.SessionID]domain.SessionMetadata{}
	if cfg.MetadataPath != "" {
		loaded, err := metadata.NewLoader(d.log, ident).Load(cfg.MetadataPath)
		if err != nil {
			return nil, fmt.Errorf("load metadata: %w", err)
		}
		meta = loaded
	}

	blobs, err := blobstore.NewFS(cfg.BlobDir)
	if err != nil {
		return nil, err
	}

	repos := importer.Repos{
		Languages:          d.Languages,
		Speakers:           d.Speakers,
		Sessions:           d.Sessions,
		Phrases:            d.Phrases,
		Recordings:         d.Recordings,
		TranscriptionFiles: d.TranscriptionFiles,
		History:            d.History,
	}
	return importer.NewService(
		d.log,
		elan.NewExtractor(d.log, ident, meta),
		repos,
		transcode.NewFFmpeg(cfg.FFmpegPath, cfg.Bitrate, cfg.MaxConcurrentTranscodes),
		blobs,
		d.Tx,
		d.Metrics,
		cfg,
	), nil
}
