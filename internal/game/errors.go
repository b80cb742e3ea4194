package game

import (
	"errors"
	"fmt"
)

// ReasonCode identifies a specific rule or validation failure.
type ReasonCode string

const (
	ReasonUnknownPlayer        ReasonCode = "unknown_player"
	ReasonSelfPartner          ReasonCode = "self_partner"
	ReasonNotCaptain           ReasonCode = "not_captain"
	ReasonNotAardvark          ReasonCode = "not_aardvark"
	ReasonFormationSet         ReasonCode = "formation_already_set"
	ReasonFormationPending     ReasonCode = "formation_not_resolved"
	ReasonNoPendingRequest     ReasonCode = "no_pending_request"
	ReasonRequestPending       ReasonCode = "request_pending"
	ReasonNotOnSide            ReasonCode = "player_not_on_side"
	ReasonDeadlinePassed       ReasonCode = "partnership_deadline_passed"
	ReasonPartnerIneligible    ReasonCode = "partner_no_longer_eligible"
	ReasonWageringClosed       ReasonCode = "wagering_closed"
	ReasonAlreadyDoubled       ReasonCode = "already_doubled"
	ReasonAlreadyRedoubled     ReasonCode = "already_redoubled"
	ReasonNoPendingDouble      ReasonCode = "no_pending_double"
	ReasonDoublePending        ReasonCode = "double_offer_pending"
	ReasonBehindScrimmage      ReasonCode = "inside_line_of_scrimmage"
	ReasonFloatUsed            ReasonCode = "float_already_used"
	ReasonOptionNotTrailing    ReasonCode = "captain_not_trailing"
	ReasonWrongPhase           ReasonCode = "wrong_game_phase"
	ReasonWrongHole            ReasonCode = "wrong_hole"
	ReasonNotTrailing          ReasonCode = "player_not_trailing"
	ReasonHoleComplete         ReasonCode = "hole_complete"
	ReasonHoleNotComplete      ReasonCode = "hole_not_complete"
	ReasonHoleInProgress       ReasonCode = "hole_in_progress"
	ReasonBallFinished         ReasonCode = "ball_already_finished"
	ReasonAlreadyTossed        ReasonCode = "aardvark_already_tossed"
	ReasonPingPongExhausted    ReasonCode = "ping_pong_exhausted"
	ReasonInvalidWager         ReasonCode = "invalid_wager_value"
	ReasonInvalidHandicap      ReasonCode = "invalid_handicap"
	ReasonInvalidScore         ReasonCode = "invalid_score"
	ReasonMissingScore         ReasonCode = "missing_score"
	ReasonInvalidPlayerCount   ReasonCode = "invalid_player_count"
	ReasonDuplicatePlayer      ReasonCode = "duplicate_player"
	ReasonGameComplete         ReasonCode = "game_complete"
	ReasonNotResponder         ReasonCode = "not_double_responder"
	ReasonGambitNotResponding  ReasonCode = "gambit_player_not_on_responding_side"
	ReasonPositionTaken        ReasonCode = "position_repeated"
	ReasonSoloVariantWrongHole ReasonCode = "solo_variant_not_available"
)

// RuleViolation reports an action that is illegal in the current game state.
// It is expected, recoverable, and never emitted after a partial mutation.
type RuleViolation struct {
	Code   ReasonCode
	Detail string
}

func (e *RuleViolation) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("rule violation: %s", e.Code)
	}
	return fmt.Sprintf("rule violation: %s: %s", e.Code, e.Detail)
}

// NewRuleViolation builds a RuleViolation with a formatted detail message.
func NewRuleViolation(code ReasonCode, format string, args ...any) *RuleViolation {
	return &RuleViolation{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// ValidationError reports malformed input: out-of-range values, unknown ids,
// missing fields. Carries the offending field plus actual/expected values.
type ValidationError struct {
	Code     ReasonCode
	Field    string
	Actual   any
	Expected string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: field %q got %v, want %s", e.Code, e.Field, e.Actual, e.Expected)
}

// StateConsistencyError reports a broken invariant. It is never expected in
// correct operation and aborts the in-flight command.
type StateConsistencyError struct {
	Invariant string
	Detail    string
}

func (e *StateConsistencyError) Error() string {
	return fmt.Sprintf("state consistency: %s: %s", e.Invariant, e.Detail)
}

// IsRuleViolation reports whether err is a RuleViolation, optionally matching
// a specific reason code (pass "" to match any).
func IsRuleViolation(err error, code ReasonCode) bool {
	var rv *RuleViolation
	if !errors.As(err, &rv) {
		return false
	}
	return code == "" || rv.Code == code
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
