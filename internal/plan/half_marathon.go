package plan

import "alcyxob/training-tracker/internal/domain"

// Wilmington Half Marathon, 13 weeks ending on race day.
var halfMarathon = domain.TrainingPlan{
	RaceName: "Wilmington Half Marathon",
	RaceDate: "2026-02-28",
	Goal:     "Sub 1:50:00 (8:24/mile pace)",
	Weeks: []domain.PlanWeek{
		{
			WeekNum: 1, Dates: "Dec 1-7", TotalMiles: 27, NumRuns: 5, Phase: "BASE BUILDING",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 12/1", Workout: "6 mi Easy (9:45-10:00)", DayType: "DAY 1", Miles: 6},
				{Day: "Tue 12/2", Workout: "5 mi Easy + 4 strides", DayType: "DAY 2", Miles: 5},
				{Day: "Wed 12/3", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Thu 12/4", Workout: "5 mi Easy", DayType: "DAY 1", Miles: 5},
				{Day: "Fri 12/5", Workout: "5 mi Easy", DayType: "DAY 2", Miles: 5},
				{Day: "Sat 12/6", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Sun 12/7", Workout: "6 mi Easy", DayType: "DAY 1", Miles: 6},
			},
		},
		{
			WeekNum: 2, Dates: "Dec 8-14", TotalMiles: 30, NumRuns: 5, Phase: "BASE BUILDING",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 12/8", Workout: "5 mi Easy", DayType: "DAY 2", Miles: 5},
				{Day: "Tue 12/9", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Wed 12/10", Workout: "6 mi Tempo (2 mi WU + 3 mi @ 8:05-8:15 + 1 mi CD)", DayType: "DAY 1", Miles: 6},
				{Day: "Thu 12/11", Workout: "5 mi Easy + 4 strides", DayType: "DAY 2", Miles: 5},
				{Day: "Fri 12/12", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Sat 12/13", Workout: "5 mi Easy", DayType: "DAY 1", Miles: 5},
				{Day: "Sun 12/14", Workout: "9 mi Long Run Easy", DayType: "DAY 2", Miles: 9},
			},
		},
		{
			WeekNum: 3, Dates: "Dec 15-21", TotalMiles: 32, NumRuns: 5, Phase: "BASE BUILDING",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 12/15", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Tue 12/16", Workout: "6 mi Easy", DayType: "DAY 1", Miles: 6},
				{Day: "Wed 12/17", Workout: "7 mi Intervals (2 mi WU + 6x800m @ 7:30-7:40 w/ 400m jog + 1 mi CD)", DayType: "DAY 2", Miles: 7},
				{Day: "Thu 12/18", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Fri 12/19", Workout: "6 mi Easy + 6 strides", DayType: "DAY 1", Miles: 6},
				{Day: "Sat 12/20", Workout: "8 mi Long Run", DayType: "DAY 2", Miles: 8},
				{Day: "Sun 12/21", Workout: "REST", DayType: "DAY 3", Miles: 0},
			},
		},
		{
			WeekNum: 4, Dates: "Dec 22-28", TotalMiles: 28, NumRuns: 5, Phase: "BASE BUILDING (RECOVERY)",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 12/22", Workout: "6 mi Easy", DayType: "DAY 1", Miles: 6},
				{Day: "Tue 12/23", Workout: "5 mi Easy", DayType: "DAY 2", Miles: 5},
				{Day: "Wed 12/24", Workout: "REST (Christmas Eve)", DayType: "DAY 3", Miles: 0},
				{Day: "Thu 12/25", Workout: "6 mi Easy + 4 strides (Christmas)", DayType: "DAY 1", Miles: 6},
				{Day: "Fri 12/26", Workout: "3 mi Easy", DayType: "DAY 2", Miles: 3},
				{Day: "Sat 12/27", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Sun 12/28", Workout: "8 mi Long Run Easy", DayType: "DAY 1", Miles: 8},
			},
		},
		{
			WeekNum: 5, Dates: "Dec 29-Jan 4", TotalMiles: 35, NumRuns: 5, Phase: "EARLY QUALITY",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 12/29", Workout: "6 mi Easy", DayType: "DAY 2", Miles: 6},
				{Day: "Tue 12/30", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Wed 12/31", Workout: "7 mi Tempo (2 mi WU + 4 mi @ 8:05-8:15 + 1 mi CD)", DayType: "DAY 1", Miles: 7},
				{Day: "Thu 1/1", Workout: "5 mi Easy (New Year's Day)", DayType: "DAY 2", Miles: 5},
				{Day: "Fri 1/2", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Sat 1/3", Workout: "6 mi Easy + 6 strides", DayType: "DAY 1", Miles: 6},
				{Day: "Sun 1/4", Workout: "11 mi Long Run Easy", DayType: "DAY 2", Miles: 11},
			},
		},
		{
			WeekNum: 6, Dates: "Jan 5-11", TotalMiles: 36, NumRuns: 5, Phase: "EARLY QUALITY",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 1/5", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Tue 1/6", Workout: "6 mi Easy + 6 strides", DayType: "DAY 1", Miles: 6},
				{Day: "Wed 1/7", Workout: "7 mi Intervals (2 mi WU + 8x800m @ 7:30-7:40 w/ 400m jog + 1 mi CD)", DayType: "DAY 2", Miles: 7},
				{Day: "Thu 1/8", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Fri 1/9", Workout: "6 mi Easy", DayType: "DAY 1", Miles: 6},
				{Day: "Sat 1/10", Workout: "12 mi Long Run (10 mi easy + 2 mi @ 8:20-8:25)", DayType: "DAY 2", Miles: 12},
				{Day: "Sun 1/11", Workout: "REST", DayType: "DAY 3", Miles: 0},
			},
		},
		{
			WeekNum: 7, Dates: "Jan 12-18", TotalMiles: 38, NumRuns: 5, Phase: "TRANSITION QUALITY",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 1/12", Workout: "7 mi Easy", DayType: "DAY 1", Miles: 7},
				{Day: "Tue 1/13", Workout: "6 mi Easy + 6 strides", DayType: "DAY 2", Miles: 6},
				{Day: "Wed 1/14", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Thu 1/15", Workout: "7 mi Tempo (2 mi WU + 4 mi @ 8:05-8:15 + 1 mi CD)", DayType: "DAY 1", Miles: 7},
				{Day: "Fri 1/16", Workout: "5 mi Recovery", DayType: "DAY 2", Miles: 5},
				{Day: "Sat 1/17", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Sun 1/18", Workout: "13 mi Long Run (11 mi easy + 2 mi @ 8:20-8:25)", DayType: "DAY 1", Miles: 13},
			},
		},
		{
			WeekNum: 8, Dates: "Jan 19-25", TotalMiles: 40, NumRuns: 5, Phase: "TRANSITION QUALITY",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 1/19", Workout: "7 mi Easy (MLK Day)", DayType: "DAY 2", Miles: 7},
				{Day: "Tue 1/20", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Wed 1/21", Workout: "7 mi Tempo (2 mi WU + 4 mi @ 8:05-8:15 + 1 mi CD)", DayType: "DAY 1", Miles: 7},
				{Day: "Thu 1/22", Workout: "5 mi Recovery", DayType: "DAY 2", Miles: 5},
				{Day: "Fri 1/23", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Sat 1/24", Workout: "7 mi w/ 4x1 mi @ 8:20-8:25 (2 mi WU + intervals w/ 2 min rest + 1 mi CD)", DayType: "DAY 1", Miles: 7},
				{Day: "Sun 1/25", Workout: "14 mi Long Run (12 mi easy + 2 mi @ 8:20-8:25)", DayType: "DAY 2", Miles: 14},
			},
		},
		{
			WeekNum: 9, Dates: "Jan 26-Feb 1", TotalMiles: 40, NumRuns: 5, Phase: "PEAK PHASE",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 1/26", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Tue 1/27", Workout: "7 mi Easy + 6 strides", DayType: "DAY 1", Miles: 7},
				{Day: "Wed 1/28", Workout: "7 mi Tempo (2 mi WU + 4 mi @ 8:05-8:15 + 1 mi CD)", DayType: "DAY 2", Miles: 7},
				{Day: "Thu 1/29", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Fri 1/30", Workout: "6 mi Easy", DayType: "DAY 1", Miles: 6},
				{Day: "Sat 1/31", Workout: "14 mi Long Run (10 mi easy + 4 mi @ 8:20-8:25)", DayType: "DAY 2", Miles: 14},
				{Day: "Sun 2/1", Workout: "REST", DayType: "DAY 3", Miles: 0},
			},
		},
		{
			WeekNum: 10, Dates: "Feb 2-8", TotalMiles: 40, NumRuns: 5, Phase: "PEAK PHASE",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 2/2", Workout: "6 mi Easy", DayType: "DAY 1", Miles: 6},
				{Day: "Tue 2/3", Workout: "6 mi Easy + 4 strides", DayType: "DAY 2", Miles: 6},
				{Day: "Wed 2/4", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Thu 2/5", Workout: "7 mi Tempo (2 mi WU + 4 mi @ 8:05-8:15 + 1 mi CD)", DayType: "DAY 1", Miles: 7},
				{Day: "Fri 2/6", Workout: "5 mi Recovery", DayType: "DAY 2", Miles: 5},
				{Day: "Sat 2/7", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Sun 2/8", Workout: "16 mi PEAK Long Run (12 mi easy + 4 mi @ 8:20-8:25 Goal Pace)", DayType: "DAY 1", Miles: 16},
			},
		},
		{
			WeekNum: 11, Dates: "Feb 9-15", TotalMiles: 34, NumRuns: 5, Phase: "RECOVERY & TRANSITION",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 2/9", Workout: "6 mi Easy", DayType: "DAY 2", Miles: 6},
				{Day: "Tue 2/10", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Wed 2/11", Workout: "6 mi Easy + 6 strides", DayType: "DAY 1", Miles: 6},
				{Day: "Thu 2/12", Workout: "6 mi Tune-Up (2 mi WU + 3 mi @ 8:20-8:25 + 1 mi CD)", DayType: "DAY 2", Miles: 6},
				{Day: "Fri 2/13", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Sat 2/14", Workout: "5 mi Easy (Valentine's Day)", DayType: "DAY 1", Miles: 5},
				{Day: "Sun 2/15", Workout: "11 mi Long Run Easy (9:30-10:00)", DayType: "DAY 2", Miles: 11},
			},
		},
		{
			WeekNum: 12, Dates: "Feb 16-22", TotalMiles: 26, NumRuns: 5, Phase: "TAPER",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 2/16", Workout: "REST (President's Day)", DayType: "DAY 3", Miles: 0},
				{Day: "Tue 2/17", Workout: "5 mi Easy + 4 strides", DayType: "DAY 1", Miles: 5},
				{Day: "Wed 2/18", Workout: "5 mi Easy", DayType: "DAY 2", Miles: 5},
				{Day: "Thu 2/19", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Fri 2/20", Workout: "5 mi Sharpener (2 mi easy + 2x1 mi @ 8:20-8:25 w/ 2 min rest + 1 mi easy)", DayType: "DAY 1", Miles: 5},
				{Day: "Sat 2/21", Workout: "8 mi Long Run Easy", DayType: "DAY 2", Miles: 8},
				{Day: "Sun 2/22", Workout: "REST", DayType: "DAY 3", Miles: 0},
			},
		},
		{
			WeekNum: 13, Dates: "Feb 23-28", TotalMiles: 23.1, NumRuns: 4, Phase: "RACE WEEK",
			Workouts: []domain.WorkoutSlot{
				{Day: "Mon 2/23", Workout: "4 mi Easy", DayType: "DAY 1", Miles: 4},
				{Day: "Tue 2/24", Workout: "3 mi Easy + 4 strides", DayType: "DAY 2", Miles: 3},
				{Day: "Wed 2/25", Workout: "REST", DayType: "DAY 3", Miles: 0},
				{Day: "Thu 2/26", Workout: "3 mi Shakeout + 3 strides", DayType: "DAY 1", Miles: 3},
				{Day: "Fri 2/27", Workout: "REST (complete rest before race)", DayType: "DAY 2", Miles: 0},
				{Day: "Sat 2/28", Workout: "RACE DAY! 13.1 miles - WILMINGTON HALF MARATHON", DayType: domain.DayTypeRace, Miles: 13.1},
				{Day: "Sun 3/1", Workout: "REST & CELEBRATE!", DayType: domain.DayTypeRest, Miles: 0},
			},
		},
	},
}
