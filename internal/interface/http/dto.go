package http

import (
	"math"
	"time"

	"github.com/edumaster/analytics-engine/internal/application/query"
	"github.com/edumaster/analytics-engine/internal/domain/advice"
	"github.com/edumaster/analytics-engine/internal/domain/dashboard"
	"github.com/edumaster/analytics-engine/internal/domain/insight"
	"github.com/edumaster/analytics-engine/internal/domain/metrics"
	"github.com/edumaster/analytics-engine/internal/domain/prediction"
)

// Rounding happens here and only here: the domain computes in full
// precision, the wire format carries one decimal for percentages and two
// for GPA.

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round0(v float64) float64 {
	return math.Round(v)
}

// behavioral analytics

type behavioralAnalyticsResponse struct {
	Status      string                 `json:"status"`
	Analytics   behavioralAnalyticsDTO `json:"analytics"`
	PeriodDays  int                    `json:"period_days"`
	GeneratedAt string                 `json:"generated_at"`
}

type behavioralAnalyticsDTO struct {
	ActivityPatterns   activityPatternsDTO   `json:"activity_patterns"`
	QuizPerformance    quizPerformanceDTO    `json:"quiz_performance"`
	ScheduleAdherence  scheduleAdherenceDTO  `json:"schedule_adherence"`
	BehavioralInsights behavioralInsightsDTO `json:"behavioral_insights"`
	Summary            behavioralSummaryDTO  `json:"summary"`
}

type activityPatternsDTO struct {
	TotalActivities      int                         `json:"total_activities"`
	CompletedActivities  int                         `json:"completed_activities"`
	CompletionRate       float64                     `json:"completion_rate"`
	AverageDuration      float64                     `json:"average_duration"`
	CategoryDistribution map[string]int              `json:"category_distribution"`
	PriorityHandling     map[string]priorityStatsDTO `json:"priority_handling"`
	SchedulingPatterns   map[string]int              `json:"scheduling_patterns"`
	StudyFocusScore      float64                     `json:"study_focus_score"`
}

type priorityStatsDTO struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

type quizPerformanceDTO struct {
	TotalQuizzes       int                           `json:"total_quizzes"`
	AverageScore       float64                       `json:"average_score"`
	PerformanceTrend   string                        `json:"performance_trend"`
	PreparationLevel   float64                       `json:"preparation_level"`
	AverageAttempts    float64                       `json:"average_attempts"`
	DifficultyHandling map[string]difficultyStatsDTO `json:"difficulty_handling"`
	TimeManagement     timeManagementDTO             `json:"time_management"`
	ConsistencyScore   float64                       `json:"consistency_score"`
}

type difficultyStatsDTO struct {
	Count        int     `json:"count"`
	AverageScore float64 `json:"average_score"`
}

type timeManagementDTO struct {
	AverageTimeMinutes float64 `json:"average_time_minutes"`
	EfficiencyScore    float64 `json:"efficiency_score"`
}

type scheduleAdherenceDTO struct {
	TotalSchedules         int     `json:"total_schedules"`
	TotalPlannedSessions   int     `json:"total_planned_sessions"`
	CompletedActivities    int     `json:"completed_activities"`
	SchedulesUpdated       int     `json:"schedules_updated"`
	AdherenceRate          float64 `json:"adherence_rate"`
	PlanningConsistency    float64 `json:"planning_consistency"`
	AvgSessionsPerSchedule float64 `json:"avg_sessions_per_schedule"`
}

type behavioralInsightsDTO struct {
	WeeklyStudyHours      float64  `json:"weekly_study_hours"`
	ScheduleAdherenceRate float64  `json:"schedule_adherence_rate"`
	TaskCompletionRate    float64  `json:"task_completion_rate"`
	ProcrastinationScore  float64  `json:"procrastination_score"`
	FocusEfficiency       float64  `json:"focus_efficiency"`
	HelpSeekingScore      float64  `json:"help_seeking_score"`
	ConsistencyScore      float64  `json:"consistency_score"`
	PerformanceTrend      string   `json:"performance_trend"`
	StudyPatternAnalysis  []string `json:"study_pattern_analysis"`
	BehavioralStrengths   []string `json:"behavioral_strengths"`
	ImprovementAreas      []string `json:"improvement_areas"`
}

type behavioralSummaryDTO struct {
	StudyHoursPerWeek    float64 `json:"study_hours_per_week"`
	ScheduleFollowing    float64 `json:"schedule_following_rate"`
	TaskCompletionRate   float64 `json:"task_completion_rate"`
	ProcrastinationLevel float64 `json:"procrastination_level"`
	FocusLevel           float64 `json:"focus_level"`
	HelpSeekingBehavior  float64 `json:"help_seeking_behavior"`
	ConsistencyScore     float64 `json:"consistency_score"`
	PerformanceTrend     string  `json:"performance_trend"`
}

func toBehavioralAnalyticsResponse(r *query.BehavioralAnalyticsResult) behavioralAnalyticsResponse {
	insights := toInsightsDTO(r.Insights)
	return behavioralAnalyticsResponse{
		Status: "success",
		Analytics: behavioralAnalyticsDTO{
			ActivityPatterns:   toActivityDTO(r.Activity),
			QuizPerformance:    toQuizDTO(r.Quiz),
			ScheduleAdherence:  toScheduleDTO(r.Schedule),
			BehavioralInsights: insights,
			Summary: behavioralSummaryDTO{
				StudyHoursPerWeek:    insights.WeeklyStudyHours,
				ScheduleFollowing:    insights.ScheduleAdherenceRate,
				TaskCompletionRate:   insights.TaskCompletionRate,
				ProcrastinationLevel: insights.ProcrastinationScore,
				FocusLevel:           insights.FocusEfficiency,
				HelpSeekingBehavior:  insights.HelpSeekingScore,
				ConsistencyScore:     insights.ConsistencyScore,
				PerformanceTrend:     insights.PerformanceTrend,
			},
		},
		PeriodDays:  r.PeriodDays,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
}

func toActivityDTO(s metrics.ActivitySnapshot) activityPatternsDTO {
	priorities := make(map[string]priorityStatsDTO, len(s.PriorityBreakdown))
	for p, stats := range s.PriorityBreakdown {
		rate := 0.0
		if stats.Total > 0 {
			rate = float64(stats.Completed) / float64(stats.Total) * 100
		}
		priorities[string(p)] = priorityStatsDTO{
			Total:          stats.Total,
			Completed:      stats.Completed,
			CompletionRate: round1(rate),
		}
	}

	patterns := make(map[string]int, len(s.SchedulingPattern))
	for part, count := range s.SchedulingPattern {
		patterns[string(part)] = count
	}

	return activityPatternsDTO{
		TotalActivities:      s.TotalActivities,
		CompletedActivities:  s.CompletedActivities,
		CompletionRate:       round1(s.CompletionRate),
		AverageDuration:      round1(s.AverageDuration),
		CategoryDistribution: s.CategoryDistribution,
		PriorityHandling:     priorities,
		SchedulingPatterns:   patterns,
		StudyFocusScore:      round1(s.FocusScore),
	}
}

func toQuizDTO(s metrics.QuizSnapshot) quizPerformanceDTO {
	difficulties := make(map[string]difficultyStatsDTO, len(s.ByDifficulty))
	for d, stats := range s.ByDifficulty {
		difficulties[string(d)] = difficultyStatsDTO{
			Count:        stats.Count,
			AverageScore: round1(stats.AverageScore),
		}
	}

	return quizPerformanceDTO{
		TotalQuizzes:       s.TotalQuizzes,
		AverageScore:       round1(s.AverageScore),
		PerformanceTrend:   string(s.Trend),
		PreparationLevel:   round1(s.PreparationLevel),
		AverageAttempts:    round1(s.AverageAttempts),
		DifficultyHandling: difficulties,
		TimeManagement: timeManagementDTO{
			AverageTimeMinutes: round1(s.AverageTimeMinutes),
			EfficiencyScore:    round1(s.TimeEfficiency),
		},
		ConsistencyScore: round1(s.Consistency),
	}
}

func toScheduleDTO(s metrics.ScheduleSnapshot) scheduleAdherenceDTO {
	return scheduleAdherenceDTO{
		TotalSchedules:         s.TotalSchedules,
		TotalPlannedSessions:   s.PlannedSessions,
		CompletedActivities:    s.CompletedActivities,
		SchedulesUpdated:       s.UpdatedSchedules,
		AdherenceRate:          round1(s.AdherenceRate),
		PlanningConsistency:    round1(s.PlanningConsistency),
		AvgSessionsPerSchedule: round1(s.AvgSessionsPerSchedule),
	}
}

func toInsightsDTO(ins insight.BehavioralInsights) behavioralInsightsDTO {
	return behavioralInsightsDTO{
		WeeklyStudyHours:      round1(ins.WeeklyStudyHours),
		ScheduleAdherenceRate: round1(ins.ScheduleAdherenceRate),
		TaskCompletionRate:    round1(ins.TaskCompletionRate),
		ProcrastinationScore:  round1(ins.ProcrastinationScore),
		FocusEfficiency:       round1(ins.FocusEfficiency),
		HelpSeekingScore:      round1(ins.HelpSeekingScore),
		ConsistencyScore:      round1(ins.ConsistencyScore),
		PerformanceTrend:      string(ins.PerformanceTrend),
		StudyPatternAnalysis:  ins.StudyPatterns,
		BehavioralStrengths:   ins.Strengths,
		ImprovementAreas:      ins.ImprovementAreas,
	}
}

// prediction

type predictionResponse struct {
	Status          string                `json:"status"`
	Prediction      predictionDTO         `json:"prediction"`
	Recommendations []recommendationDTO   `json:"recommendations"`
	Risks           []riskDTO             `json:"risks"`
	Insights        behavioralInsightsDTO `json:"behavioral_insights"`
	GeneratedAt     string                `json:"generated_at"`
}

type predictionDTO struct {
	PerformancePercentage float64      `json:"performance_percentage"`
	GPA                   float64      `json:"gpa"`
	Grade                 string       `json:"grade"`
	Confidence            float64      `json:"confidence"`
	BehavioralScore       float64      `json:"behavioral_score"`
	QuizScore             float64      `json:"quiz_score"`
	Breakdown             breakdownDTO `json:"breakdown"`
	Trend                 string       `json:"trend"`
	DataQuality           string       `json:"data_quality"`
}

type breakdownDTO struct {
	Behavioral      float64 `json:"behavioral"`
	QuizPerformance float64 `json:"quiz_performance"`
}

type recommendationDTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionSteps []string `json:"action_steps"`
	Impact      string   `json:"impact"`
	Difficulty  string   `json:"difficulty"`
	Timeframe   string   `json:"timeframe"`
	Category    string   `json:"category"`
}

type riskDTO struct {
	Issue    string `json:"issue"`
	Impact   string `json:"impact"`
	Solution string `json:"solution"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

func toPredictionResponse(r *query.AcademicPredictionResult) predictionResponse {
	return predictionResponse{
		Status:          "success",
		Prediction:      toPredictionDTO(r.Prediction),
		Recommendations: toRecommendationDTOs(r.Recommendations),
		Risks:           toRiskDTOs(r.Risks),
		Insights:        toInsightsDTO(r.Insights),
		GeneratedAt:     r.GeneratedAt.Format(time.RFC3339),
	}
}

func toPredictionDTO(p prediction.Result) predictionDTO {
	return predictionDTO{
		PerformancePercentage: p.PerformancePercentage,
		GPA:                   p.GPA,
		Grade:                 p.Grade,
		Confidence:            p.Confidence,
		BehavioralScore:       p.BehavioralScore,
		QuizScore:             p.QuizScore,
		Breakdown: breakdownDTO{
			Behavioral:      p.Breakdown.Behavioral,
			QuizPerformance: p.Breakdown.QuizPerformance,
		},
		Trend:       string(p.Trend),
		DataQuality: p.DataQuality,
	}
}

func toRecommendationDTOs(recs []advice.Recommendation) []recommendationDTO {
	out := make([]recommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, recommendationDTO{
			Title:       r.Title,
			Description: r.Description,
			ActionSteps: r.ActionSteps,
			Impact:      r.Impact,
			Difficulty:  r.Difficulty,
			Timeframe:   r.Timeframe,
			Category:    r.Category,
		})
	}
	return out
}

func toRiskDTOs(risks []advice.RiskFactor) []riskDTO {
	out := make([]riskDTO, 0, len(risks))
	for _, r := range risks {
		out = append(out, riskDTO{
			Issue:    r.Issue,
			Impact:   r.Impact,
			Solution: r.Solution,
			Priority: r.Priority,
			Category: r.Category,
		})
	}
	return out
}

// dashboard

type dashboardResponse struct {
	Status      string       `json:"status"`
	Dashboard   dashboardDTO `json:"dashboard"`
	PeriodDays  int          `json:"period_days"`
	GeneratedAt string       `json:"generated_at"`
}

type dashboardDTO struct {
	Overview             overviewDTO                 `json:"overview"`
	ActivityBreakdown    map[string]kindBreakdownDTO `json:"activity_breakdown"`
	ProductivityInsights productivityDTO             `json:"productivity_insights"`
	DailyDistribution    []dailyRollupDTO            `json:"daily_distribution"`
	WeeklyTrends         weeklyTrendsDTO             `json:"weekly_trends"`
	CoursePerformance    []courseStatsDTO            `json:"course_performance"`
	GoalsProgress        goalsDTO                    `json:"goals_progress"`
	RealTimeStatus       realTimeDTO                 `json:"real_time_status"`
}

type overviewDTO struct {
	TotalStudyHours    float64 `json:"total_study_hours"`
	SessionsThisWeek   int     `json:"sessions_this_week"`
	AverageEfficiency  float64 `json:"average_efficiency"`
	StudyStreakDays    int     `json:"study_streak_days"`
	WeeklyGoalProgress float64 `json:"weekly_goal_progress"`
}

type kindBreakdownDTO struct {
	SessionCount      int     `json:"session_count"`
	TotalTimeMinutes  float64 `json:"total_time_minutes"`
	AverageEfficiency float64 `json:"average_efficiency"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
}

type productivityDTO struct {
	BestProductivityHour string `json:"best_productivity_hour"`
	EfficiencyTrend      string `json:"efficiency_trend"`
	MostProductiveDay    string `json:"most_productive_day"`
}

type dailyRollupDTO struct {
	Date             string             `json:"date"`
	TotalTimeMinutes float64            `json:"total_time_minutes"`
	Activities       map[string]float64 `json:"activities"`
}

type weekRollupDTO struct {
	WeekStart         string  `json:"week_start"`
	TotalTimeMinutes  float64 `json:"total_time_minutes"`
	SessionCount      int     `json:"session_count"`
	AverageEfficiency float64 `json:"average_efficiency"`
}

type weeklyTrendsDTO struct {
	Weeks          []weekRollupDTO `json:"weeks"`
	TrendDirection string          `json:"trend_direction"`
}

type courseStatsDTO struct {
	CourseID            string  `json:"course_id"`
	CourseName          string  `json:"course_name"`
	TotalTimeMinutes    float64 `json:"total_time_minutes"`
	SessionCount        int     `json:"session_count"`
	AverageEfficiency   float64 `json:"average_efficiency"`
	AverageSatisfaction float64 `json:"average_satisfaction"`
	LastStudied         string  `json:"last_studied"`
}

type goalProgressDTO struct {
	TargetHours        float64 `json:"target_hours"`
	CurrentHours       float64 `json:"current_hours"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type consistencyGoalDTO struct {
	TargetDaysPerWeek   int     `json:"target_days_per_week"`
	CurrentDaysThisWeek int     `json:"current_days_this_week"`
	ProgressPercentage  float64 `json:"progress_percentage"`
}

type goalsDTO struct {
	Weekly      goalProgressDTO    `json:"weekly"`
	Monthly     goalProgressDTO    `json:"monthly"`
	Consistency consistencyGoalDTO `json:"consistency"`
}

type liveSessionDTO struct {
	SessionID              string  `json:"session_id"`
	SessionType            string  `json:"session_type"`
	CourseName             string  `json:"course_name"`
	Filename               string  `json:"filename,omitempty"`
	CurrentDurationMinutes float64 `json:"current_duration_minutes"`
	ReadingProgress        float64 `json:"reading_progress"`
	CurrentEfficiency      float64 `json:"current_efficiency"`
	LastActivity           string  `json:"last_activity"`
}

type realTimeDTO struct {
	HasActiveSession   bool             `json:"has_active_session"`
	ActiveSessionCount int              `json:"active_session_count"`
	CurrentSessions    []liveSessionDTO `json:"current_sessions"`
	TodaysTotals       todaysTotalsDTO  `json:"todays_totals"`
}

type todaysTotalsDTO struct {
	TotalMinutes float64            `json:"total_minutes"`
	ByActivity   map[string]float64 `json:"by_activity"`
}

func toDashboardResponse(r *query.DashboardResult) dashboardResponse {
	breakdown := make(map[string]kindBreakdownDTO, len(r.Breakdown))
	for kind, b := range r.Breakdown {
		breakdown[string(kind)] = kindBreakdownDTO{
			SessionCount:      b.SessionCount,
			TotalTimeMinutes:  round1(b.TotalTimeMinutes),
			AverageEfficiency: round1(b.AverageEfficiency),
			PercentageOfTotal: round1(b.PercentageOfTotal),
		}
	}

	daily := make([]dailyRollupDTO, 0, len(r.Daily))
	for _, d := range r.Daily {
		byKind := make(map[string]float64, len(d.ByKind))
		for kind, minutes := range d.ByKind {
			byKind[string(kind)] = round1(minutes)
		}
		daily = append(daily, dailyRollupDTO{
			Date:             d.Date,
			TotalTimeMinutes: round1(d.TotalTimeMinutes),
			Activities:       byKind,
		})
	}

	weeks := make([]weekRollupDTO, 0, len(r.Weekly.Weeks))
	for _, w := range r.Weekly.Weeks {
		weeks = append(weeks, weekRollupDTO{
			WeekStart:         w.WeekStart,
			TotalTimeMinutes:  round1(w.TotalTimeMinutes),
			SessionCount:      w.SessionCount,
			AverageEfficiency: round1(w.AverageEfficiency),
		})
	}

	courses := make([]courseStatsDTO, 0, len(r.Courses))
	for _, c := range r.Courses {
		courses = append(courses, courseStatsDTO{
			CourseID:            c.CourseID.String(),
			CourseName:          c.CourseName,
			TotalTimeMinutes:    round1(c.TotalTimeMinutes),
			SessionCount:        c.SessionCount,
			AverageEfficiency:   round1(c.AverageEfficiency),
			AverageSatisfaction: round1(c.AverageSatisfaction),
			LastStudied:         c.LastStudied.Format(time.RFC3339),
		})
	}

	return dashboardResponse{
		Status: "success",
		Dashboard: dashboardDTO{
			Overview: overviewDTO{
				TotalStudyHours:    round1(r.Overview.TotalStudyHours),
				SessionsThisWeek:   r.Overview.SessionsThisWeek,
				AverageEfficiency:  round1(r.Overview.AverageEfficiency),
				StudyStreakDays:    r.Overview.StudyStreakDays,
				WeeklyGoalProgress: round1(r.Overview.WeeklyGoalProgress),
			},
			ActivityBreakdown: breakdown,
			ProductivityInsights: productivityDTO{
				BestProductivityHour: r.Productivity.BestHour,
				EfficiencyTrend:      string(r.Productivity.EfficiencyTrend),
				MostProductiveDay:    r.Productivity.MostProductiveDay,
			},
			DailyDistribution: daily,
			WeeklyTrends: weeklyTrendsDTO{
				Weeks:          weeks,
				TrendDirection: string(r.Weekly.Direction),
			},
			CoursePerformance: courses,
			GoalsProgress:     toGoalsDTO(r.Goals),
			RealTimeStatus:    toRealTimeDTO(r.RealTime),
		},
		PeriodDays:  r.PeriodDays,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
}

func toGoalsDTO(g dashboard.GoalsProgress) goalsDTO {
	return goalsDTO{
		Weekly: goalProgressDTO{
			TargetHours:        g.Weekly.TargetHours,
			CurrentHours:       round1(g.Weekly.CurrentHours),
			ProgressPercentage: round1(g.Weekly.ProgressPercentage),
		},
		Monthly: goalProgressDTO{
			TargetHours:        g.Monthly.TargetHours,
			CurrentHours:       round1(g.Monthly.CurrentHours),
			ProgressPercentage: round1(g.Monthly.ProgressPercentage),
		},
		Consistency: consistencyGoalDTO{
			TargetDaysPerWeek:   g.Consistency.TargetDaysPerWeek,
			CurrentDaysThisWeek: g.Consistency.CurrentDaysThisWeek,
			ProgressPercentage:  round1(g.Consistency.ProgressPercentage),
		},
	}
}

func toRealTimeDTO(s dashboard.RealTimeStatus) realTimeDTO {
	sessions := make([]liveSessionDTO, 0, len(s.CurrentSessions))
	for _, live := range s.CurrentSessions {
		sessions = append(sessions, liveSessionDTO{
			SessionID:              live.SessionID,
			SessionType:            string(live.Kind),
			CourseName:             live.CourseName,
			Filename:               live.Filename,
			CurrentDurationMinutes: round1(live.DurationMinutes),
			ReadingProgress:        round1(live.ReadingProgress),
			CurrentEfficiency:      round1(live.Efficiency),
			LastActivity:           live.LastActivity.Format(time.RFC3339),
		})
	}

	byActivity := make(map[string]float64, len(s.Today.ByKind))
	for kind, minutes := range s.Today.ByKind {
		byActivity[string(kind)] = round1(minutes)
	}

	return realTimeDTO{
		HasActiveSession:   s.HasActiveSession,
		ActiveSessionCount: s.ActiveSessionCount,
		CurrentSessions:    sessions,
		TodaysTotals: todaysTotalsDTO{
			TotalMinutes: round1(s.Today.TotalMinutes),
			ByActivity:   byActivity,
		},
	}
}

// reading analytics

type readingAnalyticsResponse struct {
	Status      string              `json:"status"`
	Analytics   readingAnalyticsDTO `json:"analytics"`
	PeriodDays  int                 `json:"period_days"`
	GeneratedAt string              `json:"generated_at"`
}

type readingAnalyticsDTO struct {
	TotalReadingHours         float64 `json:"total_reading_hours"`
	AverageReadingSpeed       float64 `json:"average_reading_speed"`
	AverageComprehensionScore float64 `json:"average_comprehension_score"`
	TotalSlidesRead           int     `json:"total_slides_read"`
	AverageEfficiency         float64 `json:"average_efficiency"`
	ReadingStreakDays         int     `json:"reading_streak_days"`
	TotalSessions             int     `json:"total_sessions"`
	AverageSessionLength      float64 `json:"average_session_length_minutes"`
}

func toReadingAnalyticsResponse(r *query.ReadingAnalyticsResult) readingAnalyticsResponse {
	a := r.Analytics
	return readingAnalyticsResponse{
		Status: "success",
		Analytics: readingAnalyticsDTO{
			TotalReadingHours:         round1(a.TotalReadingHours),
			AverageReadingSpeed:       round0(a.AverageReadingSpeed),
			AverageComprehensionScore: round1(a.AverageComprehension),
			TotalSlidesRead:           a.TotalSlidesRead,
			AverageEfficiency:         round1(a.AverageEfficiency),
			ReadingStreakDays:         a.ReadingStreakDays,
			TotalSessions:             a.TotalSessions,
			AverageSessionLength:      round1(a.AverageSessionMinutes),
		},
		PeriodDays:  r.PeriodDays,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
}

// quiz stats

type quizStatsResponse struct {
	Status      string       `json:"status"`
	Stats       quizStatsDTO `json:"stats"`
	PeriodDays  int          `json:"period_days"`
	GeneratedAt string       `json:"generated_at"`
}

type quizStatsDTO struct {
	TotalQuizzes        int     `json:"total_quizzes"`
	TotalQuestions      int     `json:"total_questions"`
	TotalCorrect        int     `json:"total_correct"`
	TotalIncorrect      int     `json:"total_incorrect"`
	OverallAccuracy     float64 `json:"overall_accuracy"`
	AverageScore        float64 `json:"average_score"`
	HighestScore        float64 `json:"highest_score"`
	LowestScore         float64 `json:"lowest_score"`
	TotalTimeSpent      float64 `json:"total_time_spent"`
	TotalTimeSpentHours float64 `json:"total_time_spent_hours"`
	AvgTimePerQuestion  float64 `json:"avg_time_per_question"`
	PerformanceLevel    string  `json:"performance_level"`
}

func toQuizStatsResponse(r *query.QuizStatsResult) quizStatsResponse {
	s := r.Stats
	return quizStatsResponse{
		Status: "success",
		Stats: quizStatsDTO{
			TotalQuizzes:        s.TotalQuizzes,
			TotalQuestions:      s.TotalQuestions,
			TotalCorrect:        s.TotalCorrect,
			TotalIncorrect:      s.TotalIncorrect,
			OverallAccuracy:     round1(s.OverallAccuracy),
			AverageScore:        round1(s.AverageScore),
			HighestScore:        round1(s.HighestScore),
			LowestScore:         round1(s.LowestScore),
			TotalTimeSpent:      s.TotalTimeSeconds,
			TotalTimeSpentHours: round1(s.TotalTimeHours),
			AvgTimePerQuestion:  round1(s.AvgTimePerQuestion),
			PerformanceLevel:    s.PerformanceLevel,
		},
		PeriodDays:  r.PeriodDays,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
}
