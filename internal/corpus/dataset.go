package corpus

// Built-in dataset. Buckets are process-wide read-only constants; loaded
// once and never mutated. Enumeration order is the concatenation order
// below (basic, edge cases, typos, slang, multilingual, contextual,
// complex) and must not change between runs.

func conf(v float64) *float64 { return &v }

var basicCases = []TestCase{
	{Input: "create a task to buy groceries", ExpectedIntent: IntentTaskCreation, MinConfidence: conf(0.8), Category: CategoryBasic, Description: "direct task creation"},
	{Input: "add a new task: finish the quarterly report", ExpectedIntent: IntentTaskCreation, MinConfidence: conf(0.8), Category: CategoryBasic, Description: "task creation with colon payload"},
	{Input: "remind me to call the dentist tomorrow", ExpectedIntent: IntentTaskCreation, MinConfidence: conf(0.7), Category: CategoryBasic, Description: "reminder phrased task"},
	{Input: "what tasks do I have today", ExpectedIntent: IntentTaskQuery, MinConfidence: conf(0.8), Category: CategoryBasic, Description: "direct task query"},
	{Input: "show me my open tasks", ExpectedIntent: IntentTaskQuery, MinConfidence: conf(0.8), Category: CategoryBasic, Description: "list open tasks"},
	{Input: "which tasks are overdue", ExpectedIntent: IntentTaskQuery, MinConfidence: conf(0.7), Category: CategoryBasic, Description: "overdue filter query"},
	{Input: "set a goal to run a marathon this year", ExpectedIntent: IntentGoalSetting, MinConfidence: conf(0.8), Category: CategoryBasic, Description: "direct goal setting"},
	{Input: "I want to read 20 books in 2025", ExpectedIntent: IntentGoalSetting, MinConfidence: conf(0.6), Category: CategoryBasic, Description: "implicit goal statement"},
	{Input: "take a note: the wifi password is hunter2", ExpectedIntent: IntentNoteTaking, MinConfidence: conf(0.8), Category: CategoryBasic, Description: "direct note taking"},
	{Input: "write down that the meeting moved to room 4", ExpectedIntent: IntentNoteTaking, MinConfidence: conf(0.7), Category: CategoryBasic, Description: "write down phrasing"},
	{Input: "schedule a meeting with Sarah on Friday at 2pm", ExpectedIntent: IntentScheduleManagement, MinConfidence: conf(0.8), Category: CategoryBasic, Description: "direct scheduling"},
	{Input: "block time for deep work tomorrow morning", ExpectedIntent: IntentScheduleManagement, MinConfidence: conf(0.7), Category: CategoryBasic, Description: "time blocking"},
	{Input: "mark my meditation habit as done", ExpectedIntent: IntentHabitTracking, MinConfidence: conf(0.8), Category: CategoryBasic, Description: "habit completion"},
	{Input: "start tracking a daily reading habit", ExpectedIntent: IntentHabitTracking, MinConfidence: conf(0.7), Category: CategoryBasic, Description: "habit creation"},
	{Input: "how productive was I last week", ExpectedIntent: IntentAnalyticsRequest, MinConfidence: conf(0.7), Category: CategoryBasic, Description: "productivity analytics"},
	{Input: "show me my completion stats for this month", ExpectedIntent: IntentAnalyticsRequest, MinConfidence: conf(0.7), Category: CategoryBasic, Description: "stats request"},
	{Input: "how can I organize my workflow better", ExpectedIntent: IntentWorkflowOptimization, MinConfidence: conf(0.6), Category: CategoryBasic, Description: "workflow advice"},
	{Input: "suggest a better way to plan my day", ExpectedIntent: IntentWorkflowOptimization, MinConfidence: conf(0.6), Category: CategoryBasic, Description: "planning suggestion"},
	{Input: "hello", ExpectedIntent: IntentGeneralAssistance, Category: CategoryBasic, Description: "bare greeting"},
	{Input: "what can you do", ExpectedIntent: IntentGeneralAssistance, MinConfidence: conf(0.5), Category: CategoryBasic, Description: "capability question"},
}

// Edge cases resolve to the low-confidence fallback intent. The engine
// must run them like any other case, never skip or special-case them.
var edgeCases = []TestCase{
	{Input: "", ExpectedIntent: IntentGeneralAssistance, Category: CategoryEdgeCase, Description: "empty input"},
	{Input: "12345", ExpectedIntent: IntentGeneralAssistance, Category: CategoryEdgeCase, Description: "numeric-only input"},
	{Input: "?!...", ExpectedIntent: IntentGeneralAssistance, Category: CategoryEdgeCase, Description: "punctuation-only input"},
	{Input: "    ", ExpectedIntent: IntentGeneralAssistance, Category: CategoryEdgeCase, Description: "whitespace-only input"},
	{Input: "asdf qwerty zxcv", ExpectedIntent: IntentGeneralAssistance, Category: CategoryEdgeCase, Description: "keyboard mash"},
	{Input: "task goal note schedule habit", ExpectedIntent: IntentGeneralAssistance, Category: CategoryEdgeCase, Description: "conflicting intent keywords with no verb"},
}

var typoCases = []TestCase{
	{Input: "creat a tsak to buy milk", ExpectedIntent: IntentTaskCreation, MinConfidence: conf(0.5), Category: CategoryTypos, Description: "transposed letters in task creation"},
	{Input: "shedule a meetign for monday", ExpectedIntent: IntentScheduleManagement, MinConfidence: conf(0.5), Category: CategoryTypos, Description: "misspelled schedule"},
	{Input: "waht tasks do i hvae", ExpectedIntent: IntentTaskQuery, MinConfidence: conf(0.5), Category: CategoryTypos, Description: "misspelled task query"},
	{Input: "tak a noet about the new api key", ExpectedIntent: IntentNoteTaking, MinConfidence: conf(0.5), Category: CategoryTypos, Description: "misspelled note taking"},
	{Input: "trak my excercise habbit", ExpectedIntent: IntentHabitTracking, MinConfidence: conf(0.5), Category: CategoryTypos, Description: "misspelled habit tracking"},
}

var slangCases = []TestCase{
	{Input: "gotta jot this down real quick", ExpectedIntent: IntentNoteTaking, MinConfidence: conf(0.5), Category: CategorySlang, Description: "jot down slang"},
	{Input: "yo add buy snacks to my list", ExpectedIntent: IntentTaskCreation, MinConfidence: conf(0.5), Category: CategorySlang, Description: "casual task add"},
	{Input: "whats on my plate today", ExpectedIntent: IntentTaskQuery, MinConfidence: conf(0.5), Category: CategorySlang, Description: "on my plate idiom"},
	{Input: "pencil me in for lunch thursday", ExpectedIntent: IntentScheduleManagement, MinConfidence: conf(0.5), Category: CategorySlang, Description: "pencil in idiom"},
	{Input: "how am I doing streak-wise", ExpectedIntent: IntentHabitTracking, MinConfidence: conf(0.4), Category: CategorySlang, Description: "streak slang"},
}

var multilingualCases = []TestCase{
	{Input: "crear una tarea para comprar pan", ExpectedIntent: IntentTaskCreation, MinConfidence: conf(0.5), Category: CategoryMultilingual, Language: "es", Description: "Spanish task creation"},
	{Input: "quelles sont mes taches aujourd'hui", ExpectedIntent: IntentTaskQuery, MinConfidence: conf(0.5), Category: CategoryMultilingual, Language: "fr", Description: "French task query"},
	{Input: "eine Aufgabe erstellen: Bericht schreiben", ExpectedIntent: IntentTaskCreation, MinConfidence: conf(0.5), Category: CategoryMultilingual, Language: "de", Description: "German task creation"},
	{Input: "criar uma meta de economizar dinheiro", ExpectedIntent: IntentGoalSetting, MinConfidence: conf(0.4), Category: CategoryMultilingual, Language: "pt", Description: "Portuguese goal setting"},
	{Input: "agendar una reunion el viernes", ExpectedIntent: IntentScheduleManagement, MinConfidence: conf(0.4), Category: CategoryMultilingual, Language: "es", Description: "Spanish scheduling"},
}

// Contextual cases depend on implied context; labeled with the intent a
// reasonable single-turn reading yields.
var contextualCases = []TestCase{
	{Input: "and also one for the weekend", ExpectedIntent: IntentGeneralAssistance, Category: CategoryAmbiguous, Description: "dangling continuation without antecedent"},
	{Input: "move it to next week", ExpectedIntent: IntentScheduleManagement, MinConfidence: conf(0.4), Category: CategoryAmbiguous, Description: "reschedule with implied referent"},
	{Input: "did I finish everything", ExpectedIntent: IntentTaskQuery, MinConfidence: conf(0.4), Category: CategoryAmbiguous, Description: "completion question"},
	{Input: "I keep forgetting things", ExpectedIntent: IntentGeneralAssistance, Category: CategoryAmbiguous, Description: "vague complaint"},
	{Input: "make it recurring every morning", ExpectedIntent: IntentHabitTracking, MinConfidence: conf(0.4), Category: CategoryAmbiguous, Description: "recurrence with implied referent"},
}

// Complex cases genuinely express multiple intents; the label is the
// primary intent only. Scoring stays single-label so historical
// baselines remain comparable.
var complexCases = []TestCase{
	{Input: "create a task to prepare slides and schedule time for it", ExpectedIntent: IntentTaskCreation, MinConfidence: conf(0.5), Category: CategoryAmbiguous, Description: "task creation plus scheduling, primary label task"},
	{Input: "set a fitness goal and track my gym habit", ExpectedIntent: IntentGoalSetting, MinConfidence: conf(0.4), Category: CategoryAmbiguous, Description: "goal plus habit, primary label goal"},
	{Input: "note down the ideas from the call and make a task to follow up", ExpectedIntent: IntentNoteTaking, MinConfidence: conf(0.4), Category: CategoryAmbiguous, Description: "note plus task, primary label note"},
	{Input: "show my stats and suggest how to improve my mornings", ExpectedIntent: IntentAnalyticsRequest, MinConfidence: conf(0.4), Category: CategoryAmbiguous, Description: "analytics plus optimization, primary label analytics"},
}
