package constants

// Centralized constants for headers, env keys, routes and API messages.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	// Session / Cookie names
	CookieSessionName = "al_session"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteVersion     = "/version"
	RouteMonsters    = "/monsters"
	RouteActions     = "/actions"
	RouteSkills      = "/skills"
	RouteLeaderboard = "/leaderboard"

	RouteAuthGuest  = "/auth/guest"
	RouteAuthLogout = "/auth/logout"

	RouteCharacterMe = "/characters/me"

	RouteBattles      = "/battles"
	RouteBattleAction = "/battles/action"

	RouteTraining         = "/training"
	RouteTrainingComplete = "/training/complete"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest = "Invalid request"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"

	ErrCharacterNotFound = "Character not found"
	ErrMonsterNotFound   = "Monster not found"
	ErrActionNotFound    = "Training action not found"
	ErrSkillNotFound     = "Skill not found"

	ErrBattleNotFound      = "No battle in progress"
	ErrBattleAlreadyActive = "A battle is already in progress"
	ErrBattleFinished      = "Battle is already finished"
	ErrNotEnoughSP         = "Not enough SP"

	ErrTrainingNotFound      = "No training in progress"
	ErrTrainingAlreadyActive = "A training action is already in progress"
	ErrTrainingNotReady      = "Training completion is not ready yet"
	ErrJobLevelTooLow        = "Job level too low for this action"

	ErrFailedCreateCharacter = "Failed to create character"
	ErrFailedFetchCharacter  = "Failed to fetch character"
	ErrFailedFetchContent    = "Failed to fetch content"
	ErrFailedFetchLeaderbord = "Failed to fetch leaderboard"
	ErrFailedStartBattle     = "Failed to start battle"
	ErrFailedResolveTurn     = "Failed to resolve battle turn"
	ErrFailedStartTraining   = "Failed to start training"
	ErrFailedStopTraining    = "Failed to stop training"
	ErrFailedObserveTraining = "Failed to update training"
)

// Logging field names
const (
	LogFieldCharacter = "character_uuid"
	LogFieldMonster   = "monster_key"
	LogFieldAction    = "action_key"
	LogFieldAddr      = "addr"
	LogFieldBattleID  = "battle_id"
)
