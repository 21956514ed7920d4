package cli

import (
	"context"
	"sort"
	"time"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/logger"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/period"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/stats"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/team"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/utils"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/weblate"
)

// StatsSource は統計の取得元 (通常は weblate.Client)
type StatsSource interface {
	GetProjects(ctx context.Context) ([]weblate.Project, error)
	GetUserStatistics(ctx context.Context, userID string) ([]stats.Record, error)
	GetProjectStatistics(ctx context.Context, slug string) (*weblate.ProjectStats, error)
}

// Filter は集計対象の絞り込み条件
type Filter struct {
	Projects []string
	Versions []string
	Users    []string
	Range    period.TimeRange

	// DescribeProjects logs the overall progress of every filtered project
	DescribeProjects bool
}

// StatsHandler は言語チームのメンバーごとに統計を集計する
type StatsHandler struct {
	source StatsSource
	log    logger.Logger
}

// NewStatsHandler は新しい StatsHandler を作成する
func NewStatsHandler(source StatsSource, log logger.Logger) *StatsHandler {
	return &StatsHandler{source: source, log: log}
}

// Collect builds one user per (team, translator), fetches the statistics of
// every user passing the user filter and folds them. Any remote error
// aborts the run.
func (h *StatsHandler) Collect(ctx context.Context, teams []team.LanguageTeam, filter Filter) ([]*stats.User, error) {
	started := time.Now()
	h.log.Info("Getting Weblate contributors statistics",
		logger.F("from", filter.Range.From.Format(period.DateLayout)),
		logger.F("to", filter.Range.To.Format(period.DateLayout)),
	)

	var users []*stats.User
	for _, t := range teams {
		users = append(users, stats.UsersForTeam(t.LanguageCode, t.Translators)...)
	}

	projects, err := h.projectFilter(ctx, filter.Projects)
	if err != nil {
		return nil, err
	}
	if filter.DescribeProjects {
		if err := h.describeProjects(ctx, projects); err != nil {
			return nil, err
		}
	}
	versions := stats.NewSet(stats.NormalizeVersions(filter.Versions)...)
	selected := stats.NewSet(filter.Users...)

	fetched, words := 0, 0
	for _, user := range users {
		if !selected.Allows(user.UserID) {
			continue
		}

		h.log.Info("Getting for user",
			logger.F("user_id", user.UserID),
			logger.F("lang", user.Lang),
		)
		records, err := h.source.GetUserStatistics(ctx, user.UserID)
		if err != nil {
			return nil, err
		}
		h.log.Debug("Got records", logger.F("user_id", user.UserID), logger.F("records", len(records)))

		user.Fold(records, projects, versions)
		user.PopulateTotalStats()
		h.log.Debug("=> " + user.String())

		fetched++
		words += user.Totals.Translation.Total
	}

	h.log.Info("Collected statistics",
		logger.F("users", fetched),
		logger.F("words", utils.FormatNumber(words)),
		logger.F("elapsed", utils.FormatDuration(time.Since(started))),
	)
	return users, nil
}

// projectFilter returns the explicit project list, or every project slug
// known to Weblate when none was given
func (h *StatsHandler) projectFilter(ctx context.Context, explicit []string) (stats.Set, error) {
	if len(explicit) > 0 {
		return stats.NewSet(explicit...), nil
	}

	projects, err := h.source.GetProjects(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(projects))
	for _, p := range projects {
		slugs = append(slugs, p.Slug)
	}
	h.log.Debug("Projects", logger.F("count", len(slugs)))
	return stats.NewSet(slugs...), nil
}

// describeProjects logs the Weblate-wide progress of each project in slug order
func (h *StatsHandler) describeProjects(ctx context.Context, projects stats.Set) error {
	slugs := make([]string, 0, len(projects))
	for slug := range projects {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		ps, err := h.source.GetProjectStatistics(ctx, slug)
		if err != nil {
			return err
		}
		h.log.Debug("Project progress",
			logger.F("project", slug),
			logger.F("translated_words", utils.FormatNumber(ps.TranslatedWords)),
			logger.F("total_words", utils.FormatNumber(ps.TotalWords)),
			logger.F("percent", ps.TranslatedPercent),
		)
	}
	return nil
}
