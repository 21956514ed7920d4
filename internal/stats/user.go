package stats

import (
	"fmt"
	"sort"
	"strings"
)

// Record is one entry of a user statistics response.
//
//	{
//	    "savedDate": "2020-09-06",
//	    "projectSlug": "i18n",
//	    "projectName": "i18n",
//	    "versionSlug": "master",
//	    "localeId": "ko-KR",
//	    "localeDisplayName": "Korean (South Korea)",
//	    "savedState": "Translated",
//	    "wordCount": 119
//	}
type Record struct {
	SavedDate         string `json:"savedDate"`
	ProjectSlug       string `json:"projectSlug"`
	ProjectName       string `json:"projectName"`
	VersionSlug       string `json:"versionSlug"`
	LocaleID          string `json:"localeId"`
	LocaleDisplayName string `json:"localeDisplayName"`
	SavedState        string `json:"savedState"`
	WordCount         int    `json:"wordCount"`
}

// Set is an inclusion filter. An empty Set allows everything.
type Set map[string]struct{}

// NewSet builds a Set from items, ignoring empty strings.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		if item != "" {
			s[item] = struct{}{}
		}
	}
	return s
}

// Allows reports whether item passes the filter.
func (s Set) Allows(item string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[item]
	return ok
}

// NormalizeVersions converts branch names to Weblate version slugs
// ("stable/2024.1" becomes "stable-2024.1").
func NormalizeVersions(versions []string) []string {
	normalized := make([]string, 0, len(versions))
	for _, v := range versions {
		normalized = append(normalized, strings.ReplaceAll(v, "/", "-"))
	}
	return normalized
}

// User accumulates the contribution of one translator within one language
// team. The same person gets a separate User per team.
type User struct {
	UserID string
	Lang   string
	// Projects maps project slug to version slug to counters.
	Projects map[string]map[string]*VersionStats
	// Totals is the sum over Projects as of the last PopulateTotalStats.
	Totals VersionStats
}

// NewUser creates a User with no activity.
func NewUser(userID, lang string) *User {
	return &User{
		UserID:   userID,
		Lang:     lang,
		Projects: make(map[string]map[string]*VersionStats),
	}
}

// UsersForTeam creates one User per translator of a language team.
func UsersForTeam(lang string, translators []string) []*User {
	users := make([]*User, 0, len(translators))
	for _, id := range translators {
		users = append(users, NewUser(id, lang))
	}
	return users
}

// Fold accumulates records into the user's counters. Records outside the
// project or version filter, or for another language, are skipped.
func (u *User) Fold(records []Record, projects, versions Set) {
	for _, r := range records {
		if !projects.Allows(r.ProjectSlug) {
			continue
		}
		if !versions.Allows(r.VersionSlug) {
			continue
		}
		if r.LocaleID != u.Lang {
			continue
		}

		u.bucket(r.ProjectSlug, r.VersionSlug).Add(ParseState(r.SavedState), r.WordCount)
	}
}

func (u *User) bucket(project, version string) *VersionStats {
	versions, ok := u.Projects[project]
	if !ok {
		versions = make(map[string]*VersionStats)
		u.Projects[project] = versions
	}
	vs, ok := versions[version]
	if !ok {
		vs = &VersionStats{}
		versions[version] = vs
	}
	return vs
}

// PopulateTotalStats recomputes Totals from scratch.
func (u *User) PopulateTotalStats() {
	var total VersionStats
	for _, versions := range u.Projects {
		for _, vs := range versions {
			total.Merge(*vs)
		}
	}
	u.Totals = total
}

// NeedsOutput reports whether the user belongs in a report.
func (u *User) NeedsOutput(includeNoActivity bool) bool {
	if includeNoActivity {
		return true
	}
	return len(u.Projects) > 0
}

// Bucket is one (project, version) entry of a user.
type Bucket struct {
	Project string
	Version string
	Stats   VersionStats
}

// Buckets returns every (project, version) entry sorted by project and
// version.
func (u *User) Buckets() []Bucket {
	var buckets []Bucket
	for project, versions := range u.Projects {
		for version, vs := range versions {
			buckets = append(buckets, Bucket{Project: project, Version: version, Stats: *vs})
		}
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Project != buckets[j].Project {
			return buckets[i].Project < buckets[j].Project
		}
		return buckets[i].Version < buckets[j].Version
	})
	return buckets
}

// Less orders users by language code, then user ID.
func (u *User) Less(other *User) bool {
	if u.Lang != other.Lang {
		return u.Lang < other.Lang
	}
	return u.UserID < other.UserID
}

// SortUsers sorts users in place by (language, user ID).
func SortUsers(users []*User) {
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Less(users[j])
	})
}

func (u *User) String() string {
	return fmt.Sprintf("<User: user_id=%s, lang=%s, projects=%d, translated=%d, reviewed=%d>",
		u.UserID, u.Lang, len(u.Projects), u.Totals.Translation.Total, u.Totals.Review.Total)
}
