package dto

import (
	usecase "github.com/upb-facilities/cleaning-records/internal/usecase/report"
)

type StatsView struct {
	TotalRecordsToday     int64 `json:"totalRecordsToday"`
	TotalRecordsThisWeek  int64 `json:"totalRecordsThisWeek"`
	TotalRecordsThisMonth int64 `json:"totalRecordsThisMonth"`
	TotalActiveUsers      int64 `json:"totalActiveUsers"`
	TotalActiveLocations  int64 `json:"totalActiveLocations"`
}

type RankedUserView struct {
	User  UserRef `json:"user"`
	Count int64   `json:"count"`
}

type RankedLocationView struct {
	Location LocationView `json:"location"`
	Count    int64        `json:"count"`
}

type RankedCleaningTypeView struct {
	CleaningType CleaningTypeView `json:"cleaningType"`
	Count        int64            `json:"count"`
}

type AnalyticsView struct {
	TopOperators     []RankedUserView         `json:"topOperators"`
	TopLocations     []RankedLocationView     `json:"topLocations"`
	TopCleaningTypes []RankedCleaningTypeView `json:"topCleaningTypes"`
}

type DashboardView struct {
	Stats         StatsView     `json:"stats"`
	RecentRecords []RecordView  `json:"recentRecords"`
	Analytics     AnalyticsView `json:"analytics"`
}

func NewDashboardView(s *usecase.Snapshot) DashboardView {
	v := DashboardView{
		Stats: StatsView{
			TotalRecordsToday:     s.Stats.Today,
			TotalRecordsThisWeek:  s.Stats.ThisWeek,
			TotalRecordsThisMonth: s.Stats.ThisMonth,
			TotalActiveUsers:      s.Stats.ActiveUsers,
			TotalActiveLocations:  s.Stats.ActiveLocations,
		},
		RecentRecords: NewRecordViews(s.RecentRecords),
		Analytics: AnalyticsView{
			TopOperators:     make([]RankedUserView, 0, len(s.TopOperators)),
			TopLocations:     make([]RankedLocationView, 0, len(s.TopLocations)),
			TopCleaningTypes: make([]RankedCleaningTypeView, 0, len(s.TopCleaningTypes)),
		},
	}

	for _, e := range s.TopOperators {
		v.Analytics.TopOperators = append(v.Analytics.TopOperators, RankedUserView{
			User:  UserRef{ID: e.User.ID, Name: e.User.Name, Email: e.User.Email},
			Count: e.Count,
		})
	}
	for i := range s.TopLocations {
		v.Analytics.TopLocations = append(v.Analytics.TopLocations, RankedLocationView{
			Location: NewLocationView(&s.TopLocations[i].Location),
			Count:    s.TopLocations[i].Count,
		})
	}
	for i := range s.TopCleaningTypes {
		v.Analytics.TopCleaningTypes = append(v.Analytics.TopCleaningTypes, RankedCleaningTypeView{
			CleaningType: NewCleaningTypeView(&s.TopCleaningTypes[i].CleaningType),
			Count:        s.TopCleaningTypes[i].Count,
		})
	}

	return v
}
