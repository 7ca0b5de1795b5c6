package store

import (
	"testing"
)

// createTestSession inserts a session row to attach rounds to.
func createTestSession(t *testing.T, s *Store, id, mode string) {
	t.Helper()

	if err := s.Sessions().Create(&Session{ID: id, Mode: mode}); err != nil {
		t.Fatalf("failed to create session %q: %v", id, err)
	}
}

func TestRoundRepository_Create(t *testing.T) {
	s := newTestStore(t)
	createTestSession(t, s, "session-1", ModeArithmetic)
	repo := s.Rounds()

	result := 12.0
	round := &Round{
		SessionID: "session-1",
		Equation:  "3 ? 4 = 12",
		A:         3,
		B:         4,
		Op:        "*",
		Result:    &result,
		Fingers:   3,
		Correct:   true,
	}

	if err := repo.Create(round); err != nil {
		t.Fatalf("failed to create round: %v", err)
	}

	// Verify ID and CreatedAt are set
	if round.ID == 0 {
		t.Error("ID should be set after create")
	}
	if round.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set after create")
	}

	rounds, err := repo.ListBySession("session-1")
	if err != nil {
		t.Fatalf("failed to list rounds: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}

	retrieved := rounds[0]
	if retrieved.Equation != round.Equation {
		t.Errorf("Equation mismatch: got %q, want %q", retrieved.Equation, round.Equation)
	}
	if retrieved.A != 3 || retrieved.B != 4 {
		t.Errorf("operands mismatch: got %d and %d, want 3 and 4", retrieved.A, retrieved.B)
	}
	if retrieved.Op != "*" {
		t.Errorf("Op mismatch: got %q, want %q", retrieved.Op, "*")
	}
	if retrieved.Result == nil || *retrieved.Result != 12.0 {
		t.Errorf("Result mismatch: got %v, want 12", retrieved.Result)
	}
	if retrieved.Fingers != 3 {
		t.Errorf("Fingers mismatch: got %d, want 3", retrieved.Fingers)
	}
	if !retrieved.Correct {
		t.Error("Correct should be true")
	}
}

func TestRoundRepository_Create_ComparisonRound(t *testing.T) {
	s := newTestStore(t)
	createTestSession(t, s, "session-1", ModeComparison)
	repo := s.Rounds()

	round := &Round{
		SessionID: "session-1",
		Equation:  "3 ? 7",
		A:         3,
		B:         7,
		Fingers:   2,
		Correct:   false,
	}

	if err := repo.Create(round); err != nil {
		t.Fatalf("failed to create round: %v", err)
	}

	rounds, err := repo.ListBySession("session-1")
	if err != nil {
		t.Fatalf("failed to list rounds: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}

	// Comparison rounds carry no operator or result
	retrieved := rounds[0]
	if retrieved.Op != "" {
		t.Errorf("comparison round should have empty op, got %q", retrieved.Op)
	}
	if retrieved.Result != nil {
		t.Errorf("comparison round should have nil result, got %v", *retrieved.Result)
	}
	if retrieved.Correct {
		t.Error("Correct should be false")
	}
}

func TestRoundRepository_Create_UnknownSession(t *testing.T) {
	s := newTestStore(t)
	repo := s.Rounds()

	round := &Round{
		SessionID: "no-such-session",
		Equation:  "1 ? 2",
		A:         1,
		B:         2,
		Fingers:   1,
	}

	// The session_id foreign key is enforced
	if err := repo.Create(round); err == nil {
		t.Error("creating round for unknown session should fail")
	}
}

func TestRoundRepository_ListBySession_Order(t *testing.T) {
	s := newTestStore(t)
	createTestSession(t, s, "session-1", ModeComparison)
	repo := s.Rounds()

	equations := []string{"1 ? 2", "5 ? 5", "9 ? 3"}
	for _, eq := range equations {
		round := &Round{SessionID: "session-1", Equation: eq, A: 1, B: 2, Fingers: 1}
		if err := repo.Create(round); err != nil {
			t.Fatalf("failed to create round %q: %v", eq, err)
		}
	}

	rounds, err := repo.ListBySession("session-1")
	if err != nil {
		t.Fatalf("failed to list rounds: %v", err)
	}
	if len(rounds) != len(equations) {
		t.Fatalf("expected %d rounds, got %d", len(equations), len(rounds))
	}

	// Rounds come back in play order
	for i, eq := range equations {
		if rounds[i].Equation != eq {
			t.Errorf("round %d: got equation %q, want %q", i, rounds[i].Equation, eq)
		}
	}
}

func TestRoundRepository_CountBySession(t *testing.T) {
	s := newTestStore(t)
	createTestSession(t, s, "session-1", ModeComparison)
	repo := s.Rounds()

	outcomes := []bool{true, false, true, true}
	for _, correct := range outcomes {
		round := &Round{SessionID: "session-1", Equation: "1 ? 2", A: 1, B: 2, Fingers: 1, Correct: correct}
		if err := repo.Create(round); err != nil {
			t.Fatalf("failed to create round: %v", err)
		}
	}

	total, correct, err := repo.CountBySession("session-1")
	if err != nil {
		t.Fatalf("failed to count rounds: %v", err)
	}
	if total != 4 {
		t.Errorf("expected 4 total rounds, got %d", total)
	}
	if correct != 3 {
		t.Errorf("expected 3 correct rounds, got %d", correct)
	}
}

func TestRoundRepository_CountBySession_Empty(t *testing.T) {
	s := newTestStore(t)
	createTestSession(t, s, "session-1", ModeComparison)
	repo := s.Rounds()

	total, correct, err := repo.CountBySession("session-1")
	if err != nil {
		t.Fatalf("failed to count rounds: %v", err)
	}
	if total != 0 || correct != 0 {
		t.Errorf("expected 0 rounds for empty session, got total %d correct %d", total, correct)
	}
}

func TestRoundRepository_DeleteBySession(t *testing.T) {
	s := newTestStore(t)
	createTestSession(t, s, "session-1", ModeComparison)
	repo := s.Rounds()

	for i := 0; i < 3; i++ {
		round := &Round{SessionID: "session-1", Equation: "1 ? 2", A: 1, B: 2, Fingers: 1}
		if err := repo.Create(round); err != nil {
			t.Fatalf("failed to create round: %v", err)
		}
	}

	if err := repo.DeleteBySession("session-1"); err != nil {
		t.Fatalf("failed to delete rounds: %v", err)
	}

	rounds, err := repo.ListBySession("session-1")
	if err != nil {
		t.Fatalf("failed to list rounds: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("expected no rounds after delete, got %d", len(rounds))
	}
}

func TestRoundRepository_CascadeDelete(t *testing.T) {
	s := newTestStore(t)
	createTestSession(t, s, "session-1", ModeComparison)
	repo := s.Rounds()

	round := &Round{SessionID: "session-1", Equation: "1 ? 2", A: 1, B: 2, Fingers: 1}
	if err := repo.Create(round); err != nil {
		t.Fatalf("failed to create round: %v", err)
	}

	// Deleting the session cascades to its rounds
	if err := s.Sessions().Delete("session-1"); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	rounds, err := repo.ListBySession("session-1")
	if err != nil {
		t.Fatalf("failed to list rounds: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("expected rounds to cascade on session delete, got %d", len(rounds))
	}
}
