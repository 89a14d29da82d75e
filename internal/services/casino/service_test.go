package casino

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/robuxroyale/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/robuxroyale/internal/common/uuid/mocks"
	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	randomMocks "github.com/KirkDiggler/robuxroyale/internal/random/mocks"
	"github.com/KirkDiggler/robuxroyale/internal/repositories/history"
	historyMocks "github.com/KirkDiggler/robuxroyale/internal/repositories/history/mocks"
	"github.com/KirkDiggler/robuxroyale/internal/services/overlay"
)

type ServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockHistoryRepo *historyMocks.MockRepository
	mockRandom      *randomMocks.MockSource
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	mockBoostTicker *clockMocks.MockTicker
	mockRoundTicker *clockMocks.MockTicker

	roundTicks chan time.Time
	stopped    chan struct{}
	completed  chan *models.RoundOutcome

	testNow time.Time
	now     time.Time
	service *service
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockHistoryRepo = historyMocks.NewMockRepository(s.mockCtrl)
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockBoostTicker = clockMocks.NewMockTicker(s.mockCtrl)
	s.mockRoundTicker = clockMocks.NewMockTicker(s.mockCtrl)

	s.roundTicks = make(chan time.Time)
	s.stopped = make(chan struct{}, 8)
	s.completed = make(chan *models.RoundOutcome, 8)

	var boostRecv <-chan time.Time = make(chan time.Time)
	s.mockBoostTicker.EXPECT().C().Return(boostRecv).AnyTimes()
	s.mockBoostTicker.EXPECT().Stop().AnyTimes()

	var roundRecv <-chan time.Time = s.roundTicks
	s.mockRoundTicker.EXPECT().C().Return(roundRecv).AnyTimes()
	s.mockRoundTicker.EXPECT().Stop().Do(func() {
		s.stopped <- struct{}{}
	}).AnyTimes()

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.now = s.testNow
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	s.service = s.newService(false)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.service.Close()
	s.mockCtrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) newService(requireTerms bool) *service {
	svc, err := New(&Config{
		HistoryRepo:  s.mockHistoryRepo,
		Random:       s.mockRandom,
		Clock:        s.mockClock,
		UUID:         s.mockUUID,
		RequireTerms: requireTerms,
	})
	s.Require().NoError(err)

	svc.AddRoundListener(RoundListenerFunc(func(ctx context.Context, outcome *models.RoundOutcome) {
		s.completed <- outcome
	}))

	return svc
}

func (s *ServiceTestSuite) openSession(svc *service) string {
	s.mockUUID.EXPECT().NewUUID().Return("session-1")

	out, err := svc.CreateSession(context.Background(), &CreateSessionInput{})
	s.Require().NoError(err)
	return out.Session.ID
}

func (s *ServiceTestSuite) expectRoundID(id string) {
	s.mockUUID.EXPECT().NewUUID().Return(id)
}

func (s *ServiceTestSuite) expectBoostTicker() {
	s.mockClock.EXPECT().NewTicker(time.Second).Return(s.mockBoostTicker)
}

func (s *ServiceTestSuite) expectRoundTicker() {
	s.mockClock.EXPECT().NewTicker(50 * time.Millisecond).Return(s.mockRoundTicker)
}

// captureEntry returns a pointer filled in by the next AddEntry call
func (s *ServiceTestSuite) captureEntry() *models.HistoryEntry {
	entry := &models.HistoryEntry{}
	s.mockHistoryRepo.EXPECT().
		AddEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *history.AddEntryInput) error {
			s.Equal("session-1", input.SessionID)
			*entry = *input.Entry
			return nil
		})
	return entry
}

func (s *ServiceTestSuite) tick(n int) {
	for i := 0; i < n; i++ {
		s.roundTicks <- s.now
	}
}

func (s *ServiceTestSuite) waitCompleted() *models.RoundOutcome {
	select {
	case outcome := <-s.completed:
		return outcome
	case <-time.After(time.Second):
		s.FailNow("round never completed")
		return nil
	}
}

func (s *ServiceTestSuite) waitStopped() {
	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		s.FailNow("round ticker never stopped")
	}
}

func (s *ServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilHistoryRepo)

	_, err = New(&Config{HistoryRepo: s.mockHistoryRepo})
	s.ErrorIs(err, ErrNilRandom)

	_, err = New(&Config{HistoryRepo: s.mockHistoryRepo, Random: s.mockRandom})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{HistoryRepo: s.mockHistoryRepo, Random: s.mockRandom, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *ServiceTestSuite) TestCreateSession() {
	s.mockUUID.EXPECT().NewUUID().Return("session-1")

	out, err := s.service.CreateSession(context.Background(), &CreateSessionInput{PlayerName: "  Ana  "})
	s.Require().NoError(err)
	s.Equal("session-1", out.Session.ID)
	s.Equal("Ana", out.Session.PlayerName)
	s.True(out.Session.TermsAccepted)
	s.Equal(s.testNow, out.Session.CreatedAt)

	got, err := s.service.GetSession(context.Background(), &GetSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(models.BoostState{}, got.Boost)
	s.Equal(models.OverlayState{}, got.Overlay)
	s.Nil(got.Bet)
}

func (s *ServiceTestSuite) TestUnknownSession() {
	_, err := s.service.GetSession(context.Background(), &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.service.SpinRoulette(context.Background(), &PlayRoundInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *ServiceTestSuite) TestEnsureSession() {
	out, err := s.service.EnsureSession(context.Background(), &EnsureSessionInput{
		SessionID:  "discord-user",
		PlayerName: "Ana",
	})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("discord-user", out.Session.ID)

	out, err = s.service.EnsureSession(context.Background(), &EnsureSessionInput{SessionID: "discord-user"})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal("Ana", out.Session.PlayerName)

	_, err = s.service.EnsureSession(context.Background(), &EnsureSessionInput{})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ServiceTestSuite) TestEnsureSession_ExpiredSessionIsClosedFirst() {
	ctx := context.Background()
	_, err := s.service.EnsureSession(ctx, &EnsureSessionInput{SessionID: "discord-user", PlayerName: "Ana"})
	s.Require().NoError(err)

	value, found := s.service.sessions.Get("discord-user")
	s.Require().True(found)
	old := value.(*session)

	// expire the entry without waiting for the janitor
	s.service.sessions.Set("discord-user", old, time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	s.mockHistoryRepo.EXPECT().
		DeleteSession(gomock.Any(), &history.DeleteSessionInput{SessionID: "discord-user"}).
		Return(nil)

	out, err := s.service.EnsureSession(ctx, &EnsureSessionInput{SessionID: "discord-user", PlayerName: "Ana"})
	s.Require().NoError(err)
	s.True(out.Created)

	old.mu.Lock()
	s.True(old.closed)
	old.mu.Unlock()

	value, found = s.service.sessions.Get("discord-user")
	s.Require().True(found)
	s.NotSame(old, value.(*session))
}

func (s *ServiceTestSuite) TestTermsGate() {
	svc := s.newService(true)
	defer svc.Close()
	sessionID := s.openSession(svc)

	_, err := svc.SpinRoulette(context.Background(), &PlayRoundInput{SessionID: sessionID})
	s.ErrorIs(err, ErrTermsNotAccepted)

	s.now = s.testNow.Add(5 * time.Second)
	got, err := svc.GetSession(context.Background(), &GetSessionInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(10*time.Second, got.TermsRemaining)

	_, err = svc.AcceptTerms(context.Background(), &AcceptTermsInput{SessionID: sessionID})
	s.ErrorIs(err, ErrTermsCountdown)

	s.now = s.testNow.Add(15 * time.Second)
	accepted, err := svc.AcceptTerms(context.Background(), &AcceptTermsInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.True(accepted.Session.TermsAccepted)
	s.Equal(s.now, accepted.Session.TermsAcceptedAt)

	s.mockRandom.EXPECT().Float64().Return(0.0)
	s.mockRandom.EXPECT().Intn(24).Return(0)
	s.expectRoundID("round-1")
	s.captureEntry()

	out, err := svc.SpinRoulette(context.Background(), &PlayRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(1, out.Outcome.Payout)
	s.waitCompleted()
}

func (s *ServiceTestSuite) TestPlaceBet_Validation() {
	sessionID := s.openSession(s.service)

	testCases := []struct {
		name  string
		input *PlaceBetInput
	}{
		{"empty name", &PlaceBetInput{SessionID: sessionID, PlayerName: "   ", BetAmount: 10, Game: models.GameKindDice}},
		{"long name", &PlaceBetInput{SessionID: sessionID, PlayerName: "abcdefghijklmnopqrstu", BetAmount: 10, Game: models.GameKindDice}},
		{"bet too small", &PlaceBetInput{SessionID: sessionID, PlayerName: "Ana", BetAmount: 0, Game: models.GameKindDice}},
		{"bet too large", &PlaceBetInput{SessionID: sessionID, PlayerName: "Ana", BetAmount: 1001, Game: models.GameKindDice}},
		{"unknown game", &PlaceBetInput{SessionID: sessionID, PlayerName: "Ana", BetAmount: 10, Game: "poker"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.PlaceBet(context.Background(), tc.input)
			s.ErrorIs(err, ErrInvalidInput)
		})
	}

	out, err := s.service.PlaceBet(context.Background(), &PlaceBetInput{
		SessionID:  sessionID,
		PlayerName: " Ana ",
		BetAmount:  1000,
		Game:       models.GameKindDice,
	})
	s.Require().NoError(err)
	s.Equal(&models.BetContext{PlayerName: "Ana", BetAmount: 1000, Game: models.GameKindDice}, out.Bet)
}

func (s *ServiceTestSuite) TestSpinRoulette_AttachesBet() {
	sessionID := s.openSession(s.service)

	_, err := s.service.PlaceBet(context.Background(), &PlaceBetInput{
		SessionID:  sessionID,
		PlayerName: "Ana",
		BetAmount:  10,
		Game:       models.GameKindRoulette,
	})
	s.Require().NoError(err)

	s.mockRandom.EXPECT().Float64().Return(0.5)
	s.mockRandom.EXPECT().Intn(24).Return(15)
	s.expectRoundID("round-1")
	entry := s.captureEntry()

	out, err := s.service.SpinRoulette(context.Background(), &PlayRoundInput{SessionID: sessionID})
	s.Require().NoError(err)

	s.Equal("round-1", out.Outcome.ID)
	s.Equal(sessionID, out.Outcome.SessionID)
	s.Equal(100, out.Outcome.Payout)
	s.True(out.Outcome.Won)
	s.Equal(4*time.Second, out.Outcome.RevealAfter)
	s.InDelta(2565.0, out.Rotation, 0.0001)
	s.Equal(100, out.PendingReward)
	s.Require().NotNil(out.Outcome.Bet)
	s.Equal(10, out.Outcome.Bet.BetAmount)

	s.Equal(&models.HistoryEntry{
		ID:         "round-1",
		PlayerName: "Ana",
		Game:       models.GameKindRoulette,
		BetAmount:  10,
		Result:     models.HistoryResultWon,
		Winnings:   100,
		Timestamp:  s.testNow,
	}, entry)

	s.Equal(out.Outcome, s.waitCompleted())

	// The bet is consumed by the round
	got, err := s.service.GetSession(context.Background(), &GetSessionInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Nil(got.Bet)
}

func (s *ServiceTestSuite) TestSpinRoulette_BoostedPool() {
	sessionID := s.openSession(s.service)

	s.expectBoostTicker()
	_, err := s.service.ActivateBoost(context.Background(), &BoostInput{SessionID: sessionID})
	s.Require().NoError(err)

	s.mockRandom.EXPECT().Float64().Return(0.0)
	// eight sections pay 5 or more
	s.mockRandom.EXPECT().Intn(8).Return(5)
	s.expectRoundID("round-1")
	s.captureEntry()

	out, err := s.service.SpinRoulette(context.Background(), &PlayRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(150, out.Outcome.Payout)
	s.True(out.Outcome.Boosted)
	s.waitCompleted()
}

func (s *ServiceTestSuite) TestSpinSlots_Triple() {
	sessionID := s.openSession(s.service)

	s.mockRandom.EXPECT().Intn(7).Return(6).Times(3)
	s.mockRandom.EXPECT().Float64().Return(0.9)
	s.expectRoundID("round-1")
	s.captureEntry()

	out, err := s.service.SpinSlots(context.Background(), &PlayRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal("7 7 7", out.Outcome.Display)
	s.Equal(100, out.Outcome.Payout)
	s.Equal([]time.Duration{800 * time.Millisecond, 1200 * time.Millisecond, 1600 * time.Millisecond}, out.ReelStops)
	s.waitCompleted()
}

func (s *ServiceTestSuite) TestRollDice_InvalidPrediction() {
	sessionID := s.openSession(s.service)

	_, err := s.service.RollDice(context.Background(), &RollDiceInput{
		SessionID: sessionID,
		Threshold: 100,
		Mode:      games.DiceModeOver,
	})
	s.ErrorIs(err, ErrInvalidInput)
	s.True(errors.Is(err, games.ErrInvalidThreshold))

	_, err = s.service.RollDice(context.Background(), &RollDiceInput{
		SessionID: sessionID,
		Threshold: 50,
		Mode:      "sideways",
	})
	s.ErrorIs(err, games.ErrInvalidMode)
}

func (s *ServiceTestSuite) TestRollDice_WinWithoutBet() {
	sessionID := s.openSession(s.service)

	s.mockRandom.EXPECT().Intn(100).Return(75)
	s.expectRoundID("round-1")
	entry := s.captureEntry()

	out, err := s.service.RollDice(context.Background(), &RollDiceInput{
		SessionID: sessionID,
		Threshold: 50,
		Mode:      games.DiceModeOver,
	})
	s.Require().NoError(err)
	s.Equal("76", out.Outcome.Display)
	s.Equal(10, out.Outcome.Payout)
	s.Nil(out.Outcome.Bet)

	s.Equal(DefaultPlayerName, entry.PlayerName)
	s.Equal(0, entry.BetAmount)
	s.Equal(models.HistoryResultWon, entry.Result)
	s.waitCompleted()
}

func (s *ServiceTestSuite) TestBetForAnotherGameIsKept() {
	sessionID := s.openSession(s.service)

	_, err := s.service.PlaceBet(context.Background(), &PlaceBetInput{
		SessionID:  sessionID,
		PlayerName: "Ana",
		BetAmount:  5,
		Game:       models.GameKindDice,
	})
	s.Require().NoError(err)

	s.mockRandom.EXPECT().Float64().Return(0.0)
	s.mockRandom.EXPECT().Intn(24).Return(0)
	s.expectRoundID("round-1")
	entry := s.captureEntry()

	out, err := s.service.SpinRoulette(context.Background(), &PlayRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Nil(out.Outcome.Bet)
	s.Equal("Ana", entry.PlayerName)
	s.waitCompleted()

	got, err := s.service.GetSession(context.Background(), &GetSessionInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Require().NotNil(got.Bet)
	s.Equal(models.GameKindDice, got.Bet.Game)
}

func (s *ServiceTestSuite) TestCrash_CashOut() {
	sessionID := s.openSession(s.service)

	s.mockRandom.EXPECT().Float64().Return(0.5)
	s.expectRoundID("round-1")
	s.expectRoundTicker()

	started, err := s.service.StartCrash(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(models.RoundPhaseRunning, started.Status.Phase)
	s.Equal("1.00x", started.Status.Display)

	_, err = s.service.StartCrash(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.ErrorIs(err, ErrRoundInProgress)

	s.tick(50)
	s.Eventually(func() bool {
		out, err := s.service.GetCrashStatus(context.Background(), &TimedRoundInput{SessionID: sessionID})
		return err == nil && out.Status.Ticks == 50
	}, time.Second, 5*time.Millisecond)

	status, err := s.service.GetCrashStatus(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal("1.50x", status.Status.Display)
	s.Equal(7, status.Status.PotentialPayout)

	// Boost is read at cash-out
	s.expectBoostTicker()
	_, err = s.service.ActivateBoost(context.Background(), &BoostInput{SessionID: sessionID})
	s.Require().NoError(err)

	entry := s.captureEntry()
	out, err := s.service.CashOutCrash(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal("round-1", out.Outcome.ID)
	s.Equal(11, out.Outcome.Payout)
	s.True(out.Outcome.Won)
	s.True(out.Outcome.Boosted)
	s.Equal(11, out.PendingReward)
	s.Equal(models.HistoryResultWon, entry.Result)
	s.waitCompleted()
	s.waitStopped()

	_, err = s.service.CashOutCrash(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.ErrorIs(err, ErrRoundNotRunning)

	status, err = s.service.GetCrashStatus(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(models.RoundPhaseCashedOut, status.Status.Phase)
	s.Equal(out.Outcome, status.Status.Outcome)
}

func (s *ServiceTestSuite) TestCrash_BustsOnItsOwn() {
	sessionID := s.openSession(s.service)

	// crash point 1.10x
	s.mockRandom.EXPECT().Float64().Return(0.0)
	s.expectRoundID("round-1")
	s.expectRoundTicker()

	_, err := s.service.StartCrash(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.Require().NoError(err)

	entry := s.captureEntry()
	s.tick(10)

	outcome := s.waitCompleted()
	s.Equal("round-1", outcome.ID)
	s.Equal(models.GameKindCrash, outcome.Game)
	s.False(outcome.Won)
	s.Equal(0, outcome.Payout)
	s.Equal("1.10x", outcome.Display)
	s.Equal(models.HistoryResultLost, entry.Result)
	s.waitStopped()

	status, err := s.service.GetCrashStatus(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(models.RoundPhaseBusted, status.Status.Phase)

	_, err = s.service.CashOutCrash(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.ErrorIs(err, ErrRoundNotRunning)
}

func (s *ServiceTestSuite) TestNyanCat_Save() {
	sessionID := s.openSession(s.service)

	_, err := s.service.GetNyanCatStatus(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.ErrorIs(err, ErrNoRound)

	// ceiling 50m
	s.mockRandom.EXPECT().Float64().Return(0.0)
	s.expectRoundID("round-1")
	s.expectRoundTicker()

	_, err = s.service.LaunchNyanCat(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.Require().NoError(err)

	s.tick(10)
	s.Eventually(func() bool {
		out, err := s.service.GetNyanCatStatus(context.Background(), &TimedRoundInput{SessionID: sessionID})
		return err == nil && out.Status.Ticks == 10
	}, time.Second, 5*time.Millisecond)

	s.captureEntry()
	out, err := s.service.SaveNyanCat(context.Background(), &TimedRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal("20m", out.Outcome.Display)
	s.Equal(2, out.Outcome.Payout)
	s.waitCompleted()
	s.waitStopped()
}

func (s *ServiceTestSuite) TestHandleKey() {
	sessionID := s.openSession(s.service)
	ctx := context.Background()

	// Number keys do nothing while the warning is hidden
	out, err := s.service.HandleKey(ctx, &HandleKeyInput{SessionID: sessionID, Event: models.KeyEvent{Key: "1"}})
	s.Require().NoError(err)
	s.Empty(out.Commands)
	s.False(out.Boost.Active)

	out, err = s.service.HandleKey(ctx, &HandleKeyInput{SessionID: sessionID, Event: models.KeyEvent{Key: "Control", Ctrl: true}})
	s.Require().NoError(err)
	s.Equal([]overlay.Command{overlay.CommandShowWarning}, out.Commands)
	s.True(out.Overlay.WarningVisible)

	s.expectBoostTicker()
	out, err = s.service.HandleKey(ctx, &HandleKeyInput{SessionID: sessionID, Event: models.KeyEvent{Key: "1", Ctrl: true}})
	s.Require().NoError(err)
	s.Equal(models.BoostState{Active: true, RemainingSeconds: 10}, out.Boost)

	out, err = s.service.HandleKey(ctx, &HandleKeyInput{SessionID: sessionID, Event: models.KeyEvent{Key: "2", Ctrl: true}})
	s.Require().NoError(err)
	s.True(out.Overlay.AlertMode)

	out, err = s.service.HandleKey(ctx, &HandleKeyInput{SessionID: sessionID, Event: models.KeyEvent{Key: "Control", Up: true}})
	s.Require().NoError(err)
	s.False(out.Overlay.WarningVisible)
	s.True(out.Overlay.AlertMode)

	out, err = s.service.HandleKey(ctx, &HandleKeyInput{SessionID: sessionID, Event: models.KeyEvent{Key: "F2", Ctrl: true}})
	s.Require().NoError(err)
	s.True(out.Overlay.MusicPlaying)
}

func (s *ServiceTestSuite) TestClaimReward() {
	sessionID := s.openSession(s.service)
	ctx := context.Background()

	_, err := s.service.ClaimReward(ctx, &ClaimRewardInput{SessionID: sessionID, Username: "builderman"})
	s.ErrorIs(err, ErrNoPendingReward)

	s.mockRandom.EXPECT().Float64().Return(0.0)
	s.mockRandom.EXPECT().Intn(24).Return(6)
	s.expectRoundID("round-1")
	s.captureEntry()
	_, err = s.service.SpinRoulette(ctx, &PlayRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.waitCompleted()

	_, err = s.service.ClaimReward(ctx, &ClaimRewardInput{SessionID: sessionID, Username: "  "})
	s.ErrorIs(err, ErrInvalidInput)

	out, err := s.service.ClaimReward(ctx, &ClaimRewardInput{SessionID: sessionID, Username: " builderman "})
	s.Require().NoError(err)
	s.Equal(&models.RewardClaim{
		Username:      "builderman",
		Amount:        25,
		ClipboardText: "builderman",
		RedirectURL:   DefaultRedirectURL,
		RedirectAfter: 3 * time.Second,
	}, out.Claim)

	_, err = s.service.ClaimReward(ctx, &ClaimRewardInput{SessionID: sessionID, Username: "builderman"})
	s.ErrorIs(err, ErrNoPendingReward)
}

func (s *ServiceTestSuite) TestGetHistory_DefaultLimit() {
	sessionID := s.openSession(s.service)

	entries := []*models.HistoryEntry{{ID: "round-2"}, {ID: "round-1"}}
	s.mockHistoryRepo.EXPECT().
		ListEntries(gomock.Any(), &history.ListEntriesInput{SessionID: sessionID, Limit: 10}).
		Return(&history.ListEntriesOutput{Entries: entries}, nil)

	out, err := s.service.GetHistory(context.Background(), &GetHistoryInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(entries, out.Entries)
}

func (s *ServiceTestSuite) TestGetStats() {
	sessionID := s.openSession(s.service)

	s.mockHistoryRepo.EXPECT().
		GetStats(gomock.Any(), &history.GetStatsInput{SessionID: sessionID}).
		Return(&models.SessionStats{Rounds: 3, Wins: 2, Losses: 1, TotalBet: 30, TotalWinnings: 40}, nil)

	out, err := s.service.GetStats(context.Background(), &GetStatsInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(67, out.WinRate)
	s.Equal(40, out.Stats.TotalWinnings)
}

func (s *ServiceTestSuite) TestGetStats_RepositoryError() {
	sessionID := s.openSession(s.service)

	s.mockHistoryRepo.EXPECT().
		GetStats(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, err := s.service.GetStats(context.Background(), &GetStatsInput{SessionID: sessionID})
	s.Error(err)
}

func (s *ServiceTestSuite) TestCloseSession() {
	sessionID := s.openSession(s.service)

	s.mockHistoryRepo.EXPECT().
		DeleteSession(gomock.Any(), &history.DeleteSessionInput{SessionID: sessionID}).
		Return(nil)

	s.Require().NoError(s.service.CloseSession(context.Background(), &CloseSessionInput{SessionID: sessionID}))

	_, err := s.service.GetSession(context.Background(), &GetSessionInput{SessionID: sessionID})
	s.ErrorIs(err, ErrSessionNotFound)

	err = s.service.CloseSession(context.Background(), &CloseSessionInput{SessionID: sessionID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *ServiceTestSuite) TestListGames() {
	catalog := s.service.ListGames(context.Background())
	s.Len(catalog, len(models.GameKinds))
}
