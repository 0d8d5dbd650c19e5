package service

// dailyRoutineTemplate 是“生成今日日程”使用的固定模板
// 十条预定义条目覆盖 06:00–20:00，生成时逐条以 todo 状态新建
var dailyRoutineTemplate = []TaskInput{
	{Title: "Morning Exercise", Description: "Stretching and a short run", Category: CategoryExercise, Priority: PriorityHigh, EstimatedTime: "30m", ScheduledTime: "06:00"},
	{Title: "Breakfast", Description: "Unhurried breakfast before the day starts", Category: CategoryMeals, Priority: PriorityMedium, EstimatedTime: "30m", ScheduledTime: "07:00"},
	{Title: "Deep Work Block", Description: "Most important task of the day, no interruptions", Category: CategoryWork, Priority: PriorityHigh, EstimatedTime: "2h", ScheduledTime: "08:00"},
	{Title: "Review React Hooks", Description: "Deep dive into useEffect and useContext", Category: CategoryStudy, Priority: PriorityHigh, EstimatedTime: "2h", ScheduledTime: "10:30"},
	{Title: "Lunch Break", Description: "Lunch and a short walk", Category: CategoryMeals, Priority: PriorityMedium, EstimatedTime: "1h", ScheduledTime: "12:30"},
	{Title: "Project Work", Description: "Ongoing project tasks and reviews", Category: CategoryWork, Priority: PriorityHigh, EstimatedTime: "3h", ScheduledTime: "13:30"},
	{Title: "Study JavaScript Basics", Description: "Variables, functions, and objects", Category: CategoryStudy, Priority: PriorityMedium, EstimatedTime: "1h", ScheduledTime: "16:30"},
	{Title: "Dinner", Description: "Dinner with no screens", Category: CategoryMeals, Priority: PriorityMedium, EstimatedTime: "45m", ScheduledTime: "18:00"},
	{Title: "Evening Walk", Description: "Light exercise to wind down", Category: CategoryPersonal, Priority: PriorityLow, EstimatedTime: "30m", ScheduledTime: "19:00"},
	{Title: "Leisure Reading", Description: "Continue reading Clean Code by Robert Martin", Category: CategoryEntertainment, Priority: PriorityLow, EstimatedTime: "1h", ScheduledTime: "20:00"},
}
