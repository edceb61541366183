package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"startup-hub-api/internal/metrics"
	"startup-hub-api/internal/repository"
)

// EntryCountJob refreshes the per-entity row-count gauges so dashboards
// track directory growth without querying the database directly
type EntryCountJob struct {
	metrics *metrics.Metrics
	logger  *zap.Logger
	counts  map[string]func(context.Context) (int64, error)
}

// NewEntryCountJob creates a new EntryCountJob instance
func NewEntryCountJob(
	contestRepo repository.ContestRepository,
	openCallRepo repository.OpenCallRepository,
	subsidyRepo repository.SubsidyRepository,
	eventRepo repository.EventRepository,
	facilityRepo repository.FacilityRepository,
	knowledgeRepo repository.KnowledgeRepository,
	assetProvisionRepo repository.AssetProvisionRepository,
	technologyRepo repository.TechnologyRepository,
	boardRepo repository.StartupBoardRepository,
	locationRepo repository.LocationRepository,
	workspaceRepo repository.WorkspaceRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *EntryCountJob {
	return &EntryCountJob{
		metrics: m,
		logger:  logger,
		counts: map[string]func(context.Context) (int64, error){
			"contest":         contestRepo.Count,
			"open_call":       openCallRepo.Count,
			"subsidy":         subsidyRepo.Count,
			"event":           eventRepo.Count,
			"facility":        facilityRepo.Count,
			"knowledge":       knowledgeRepo.Count,
			"asset_provision": assetProvisionRepo.Count,
			"technology":      technologyRepo.Count,
			"startup_board":   boardRepo.Count,
			"location":        locationRepo.Count,
			"workspace":       workspaceRepo.Count,
		},
	}
}

// Run counts every entity and updates the gauges. Failures log and move
// on; a stale gauge beats a dead job.
func (j *EntryCountJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for entity, count := range j.counts {
		n, err := count(ctx)
		if err != nil {
			j.logger.Warn("エントリ数の取得に失敗",
				zap.String("entity", entity),
				zap.Error(err),
			)
			continue
		}
		j.metrics.SetEntriesTotal(entity, n)
	}
}
