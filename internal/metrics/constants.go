package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this game exports
const Namespace = "mansion"

// Command metric names
const (
	MetricNameCommandsTotal   = "commands_total"
	MetricNameCommandDuration = "command_duration_seconds"
)

// Gameplay metric names
const (
	MetricNameMovesTotal         = "moves_total"
	MetricNameItemTransfersTotal = "item_transfers_total"
	MetricNamePuzzleEventsTotal  = "puzzle_events_total"
	MetricNameSaveOpsTotal       = "save_operations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextCommandsTotal      = "Total number of player commands by verb and outcome"
	HelpTextCommandDuration    = "Time spent executing a player command in seconds"
	HelpTextMovesTotal         = "Total number of successful moves by direction"
	HelpTextItemTransfersTotal = "Total number of items moved between a room and the inventory"
	HelpTextPuzzleEventsTotal  = "Total number of puzzle interactions by puzzle and outcome"
	HelpTextSaveOpsTotal       = "Total number of save and load operations by outcome"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelVerb      = "verb"
	LabelResult    = "result"
	LabelDirection = "direction"
	LabelAction    = "action"
	LabelPuzzle    = "puzzle"
	LabelOperation = "operation"
)

// Result label values
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// VerbUnknown labels input that matched no command
const VerbUnknown = "unknown"

// Label values for transfers, puzzles and save operations
const (
	ActionTake = "take"
	ActionDrop = "drop"

	PuzzleLever = "lever"
	PuzzleChest = "chest"

	PuzzleSolved   = "solved"
	PuzzleRepeated = "repeated"
	PuzzleBlocked  = "blocked"

	OperationSave = "save"
	OperationLoad = "load"
)

// CommandLatencyBuckets covers in-memory commands (microseconds) up to file I/O
var CommandLatencyBuckets = []float64{.00001, .0001, .001, .01, .1, 1}
