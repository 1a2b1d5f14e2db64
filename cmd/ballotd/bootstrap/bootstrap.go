package bootstrap

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tokenized/ballot-engine/internal/election"
	"github.com/tokenized/ballot-engine/internal/platform/config"
	"github.com/tokenized/ballot-engine/internal/platform/db"
	"github.com/tokenized/ballot-engine/internal/platform/logger"
	"github.com/tokenized/ballot-engine/pkg/protocol"
	"github.com/tokenized/ballot-engine/pkg/scheduler"
	"github.com/tokenized/ballot-engine/pkg/wallet"

	"github.com/pkg/errors"
)

func NewContextWithDevelopmentLogger() context.Context {
	return logger.NewContext()
}

func NewConfigFromEnv(ctx context.Context) *config.Config {
	cfg, err := config.Environment()
	if err != nil {
		logger.Fatal(ctx, "Parsing Config : %s", err)
	}

	// Mask sensitive values
	cfgSafe := config.SafeConfig(*cfg)
	cfgJSON, err := json.MarshalIndent(cfgSafe, "", "    ")
	if err != nil {
		logger.Fatal(ctx, "Marshalling Config to JSON : %s", err)
	}
	logger.Info(ctx, "Config : %v", string(cfgJSON))

	return cfg
}

func NewMasterDB(ctx context.Context, cfg *config.Config) *db.DB {
	masterDB, err := db.New(&db.StorageConfig{
		Bucket:     cfg.Storage.Bucket,
		Root:       cfg.Storage.Root,
		MaxRetries: cfg.Storage.MaxRetries,
		RetryDelay: cfg.Storage.RetryDelay,
	})
	if err != nil {
		logger.Fatal(ctx, "Register DB : %s", err)
	}

	return masterDB
}

// LoadOrCreateElection recovers the persisted election, or initializes one
// from the configuration on first boot. The administrator identity is
// derived from the configured admin key; the key itself never reaches the
// engine.
func LoadOrCreateElection(ctx context.Context, cfg *config.Config, masterDB *db.DB) *election.Election {
	e, err := election.Load(ctx, masterDB)
	if err == nil {
		logger.Info(ctx, "Loaded election : administrator %s, %d proposals",
			e.Admin(), len(e.Proposals()))
		return e
	}

	if errors.Cause(err) != db.ErrNotFound {
		logger.Fatal(ctx, "Load election : %s", err)
	}

	adminKey, err := wallet.KeyFromStr(cfg.Election.AdminKey)
	if err != nil {
		logger.Fatal(ctx, "Invalid admin key : %s", err)
	}

	e, err = election.Create(ctx, masterDB, adminKey.ID, cfg.Election.Proposals,
		protocol.CurrentTimestamp())
	if err != nil {
		logger.Fatal(ctx, "Create election : %s", err)
	}

	logger.Info(ctx, "Created election : administrator %s, %d proposals",
		adminKey.ID, len(cfg.Election.Proposals))
	return e
}

// NewTallyReporter returns the periodic job logging the proposal currently
// in the lead.
func NewTallyReporter(e *election.Election, interval time.Duration) *scheduler.PeriodicProcess {
	return scheduler.NewPeriodicProcess("tally", func(ctx context.Context) {
		index, proposal, err := e.LeadingProposal()
		if err != nil {
			logger.Warn(ctx, "Tally : %s", err)
			return
		}

		logger.Info(ctx, "Tally : proposal %d %q leads with %d votes",
			index, proposal.Label.String(), proposal.VoteCount)
	}, interval)
}
