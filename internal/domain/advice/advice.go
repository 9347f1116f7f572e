// Package advice turns behavioral insights into actionable recommendations
// and risk flags. Both are ordered rule tables evaluated top to bottom;
// recommendations are capped, risks are not.
package advice

import (
	"fmt"

	"github.com/edumaster/analytics-engine/internal/domain/insight"
	"github.com/edumaster/analytics-engine/internal/domain/metrics"
)

// MaxRecommendations bounds the recommendation list.
const MaxRecommendations = 4

// Rule thresholds.
const (
	lowWeeklyHours      = 15.0
	lowTaskCompletion   = 70.0
	highProcrastination = 40.0
	lowQuizAverage      = 75.0
	lowAdherence        = 65.0

	riskProcrastination = 50.0
	riskQuizAverage     = 65.0
	riskAdherence       = 50.0
	riskWeeklyHours     = 10.0
)

// Recommendation is one actionable suggestion.
type Recommendation struct {
	Title       string
	Description string
	ActionSteps []string
	Impact      string
	Difficulty  string
	Timeframe   string
	Category    string
}

// RiskFactor flags a behavior likely to hurt outcomes.
type RiskFactor struct {
	Issue    string
	Impact   string
	Solution string
	Priority string
	Category string
}

// Recommendations evaluates the recommendation rules in declared order and
// returns at most MaxRecommendations of them.
func Recommendations(ins insight.BehavioralInsights, quiz metrics.QuizSnapshot) []Recommendation {
	var recs []Recommendation

	if ins.WeeklyStudyHours < lowWeeklyHours {
		recs = append(recs, Recommendation{
			Title:       "Increase Study Time",
			Description: fmt.Sprintf("Currently studying %.1fh/week. Aim for 20-25h for better results.", ins.WeeklyStudyHours),
			ActionSteps: []string{
				"Schedule 2-3 additional study sessions per week",
				"Use the activity tracker to monitor study time",
				"Set daily study time goals",
			},
			Impact:     "+0.5 GPA points",
			Difficulty: "Medium",
			Timeframe:  "2-3 weeks",
			Category:   "Study Time",
		})
	}

	if ins.TaskCompletionRate < lowTaskCompletion {
		recs = append(recs, Recommendation{
			Title:       "Improve Task Completion",
			Description: fmt.Sprintf("Current completion rate: %.1f%%. Focus on finishing started tasks.", ins.TaskCompletionRate),
			ActionSteps: []string{
				"Break large tasks into smaller, manageable pieces",
				"Set specific deadlines for each task",
				"Use the schedule feature to plan task completion",
			},
			Impact:     "+0.4 GPA points",
			Difficulty: "Easy",
			Timeframe:  "1-2 weeks",
			Category:   "Task Management",
		})
	}

	if ins.ProcrastinationScore > highProcrastination {
		recs = append(recs, Recommendation{
			Title:       "Reduce Procrastination",
			Description: fmt.Sprintf("Procrastination level: %.1f%%. Use time management techniques.", ins.ProcrastinationScore),
			ActionSteps: []string{
				"Use the 2-minute rule: do tasks immediately if they take <2 minutes",
				"Schedule specific time blocks for different activities",
				"Start with the most challenging task when energy is high",
			},
			Impact:     "+0.6 GPA points",
			Difficulty: "Medium",
			Timeframe:  "3-4 weeks",
			Category:   "Time Management",
		})
	}

	if quiz.AverageScore < lowQuizAverage {
		recs = append(recs, Recommendation{
			Title:       "Improve Quiz Performance",
			Description: fmt.Sprintf("Current quiz average: %.1f%%. Focus on preparation and understanding.", quiz.AverageScore),
			ActionSteps: []string{
				"Review course material before each quiz",
				"Take practice quizzes to identify weak areas",
				"Allocate more time for difficult topics",
			},
			Impact:     "+0.5 GPA points",
			Difficulty: "Medium",
			Timeframe:  "2-3 weeks",
			Category:   "Academic Performance",
		})
	}

	if ins.ScheduleAdherenceRate < lowAdherence {
		recs = append(recs, Recommendation{
			Title:       "Better Schedule Following",
			Description: fmt.Sprintf("Schedule adherence: %.1f%%. Stick to your planned study times.", ins.ScheduleAdherenceRate),
			ActionSteps: []string{
				"Create realistic schedules with achievable time blocks",
				"Set reminders for scheduled study sessions",
				"Review and adjust schedule weekly based on actual performance",
			},
			Impact:     "+0.3 GPA points",
			Difficulty: "Easy",
			Timeframe:  "1-2 weeks",
			Category:   "Schedule Management",
		})
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

// Risks evaluates the risk rules in declared order. The list is uncapped.
func Risks(ins insight.BehavioralInsights, quiz metrics.QuizSnapshot) []RiskFactor {
	var risks []RiskFactor

	if ins.ProcrastinationScore > riskProcrastination {
		risks = append(risks, RiskFactor{
			Issue:    "High Procrastination Detected",
			Impact:   "May lead to missed deadlines and poor performance",
			Solution: "Implement time-blocking and break tasks into smaller chunks",
			Priority: "High",
			Category: "Time Management",
		})
	}

	if ins.PerformanceTrend == metrics.TrendDeclining {
		risks = append(risks, RiskFactor{
			Issue:    "Declining Performance Trend",
			Impact:   "Academic performance is trending downward",
			Solution: "Analyze recent changes in study habits and adjust accordingly",
			Priority: "High",
			Category: "Performance Trend",
		})
	}

	if quiz.AverageScore < riskQuizAverage {
		risks = append(risks, RiskFactor{
			Issue:    "Low Quiz Performance",
			Impact:   "Indicates gaps in subject understanding",
			Solution: "Increase preparation time and seek additional help",
			Priority: "High",
			Category: "Academic Performance",
		})
	}

	if ins.ScheduleAdherenceRate < riskAdherence {
		risks = append(risks, RiskFactor{
			Issue:    "Poor Schedule Adherence",
			Impact:   "Inconsistent study patterns affecting learning",
			Solution: "Create more realistic schedules and use reminders",
			Priority: "Medium",
			Category: "Schedule Management",
		})
	}

	if ins.WeeklyStudyHours < riskWeeklyHours {
		risks = append(risks, RiskFactor{
			Issue:    "Insufficient Study Time",
			Impact:   "May not have enough time to master course material",
			Solution: "Increase weekly study hours gradually",
			Priority: "Medium",
			Category: "Study Time",
		})
	}

	return risks
}
