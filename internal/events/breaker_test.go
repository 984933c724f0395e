package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"statement-analyzer/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakePublisher struct {
	err    error
	calls  int
	closed bool
}

func (p *fakePublisher) PublishLedgerIngested(ctx context.Context, event *models.LedgerIngestedEvent) error {
	p.calls++
	return p.err
}

func (p *fakePublisher) Close() error {
	p.closed = true
	return nil
}

type BreakerTestSuite struct {
	suite.Suite
	clock     time.Time
	breaker   *Breaker
	next      *fakePublisher
	publisher *GuardedPublisher
	event     *models.LedgerIngestedEvent
}

func (s *BreakerTestSuite) SetupTest() {
	s.clock = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.breaker = NewBreaker(BreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenMaxSucc: 2})
	s.breaker.now = func() time.Time { return s.clock }
	s.next = &fakePublisher{}
	s.publisher = NewGuardedPublisher(s.next, s.breaker)
	s.event = &models.LedgerIngestedEvent{SessionID: uuid.New(), Filename: "statement.csv", RowCount: 3}
}

func TestBreakerTestSuite(t *testing.T) {
	suite.Run(t, new(BreakerTestSuite))
}

func (s *BreakerTestSuite) publish() error {
	return s.publisher.PublishLedgerIngested(context.Background(), s.event)
}

func (s *BreakerTestSuite) TestOpensAfterMaxFailures() {
	s.next.err = errors.New("connection reset")

	s.Error(s.publish())
	s.Equal(BreakerClosed, s.breaker.State())
	s.Error(s.publish())
	s.Equal(BreakerOpen, s.breaker.State())

	s.ErrorIs(s.publish(), ErrBrokerUnavailable)
	s.Equal(2, s.next.calls)
}

func (s *BreakerTestSuite) TestSuccessResetsFailureCount() {
	s.next.err = errors.New("connection reset")
	s.Error(s.publish())

	s.next.err = nil
	s.NoError(s.publish())

	s.next.err = errors.New("connection reset")
	s.Error(s.publish())
	s.Equal(BreakerClosed, s.breaker.State())
}

func (s *BreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	s.next.err = errors.New("connection reset")
	s.Error(s.publish())
	s.Error(s.publish())
	s.Require().Equal(BreakerOpen, s.breaker.State())

	s.clock = s.clock.Add(2 * time.Minute)
	s.next.err = nil

	s.NoError(s.publish())
	s.Equal(BreakerHalfOpen, s.breaker.State())
	s.NoError(s.publish())
	s.Equal(BreakerClosed, s.breaker.State())
}

func (s *BreakerTestSuite) TestHalfOpenFailureReopens() {
	s.next.err = errors.New("connection reset")
	s.Error(s.publish())
	s.Error(s.publish())

	s.clock = s.clock.Add(2 * time.Minute)
	s.Error(s.publish())
	s.Equal(BreakerOpen, s.breaker.State())
	s.ErrorIs(s.publish(), ErrBrokerUnavailable)
}

func (s *BreakerTestSuite) TestClose() {
	s.NoError(s.publisher.Close())
	s.True(s.next.closed)
}

func (s *BreakerTestSuite) TestStateString() {
	s.Equal("closed", BreakerClosed.String())
	s.Equal("open", BreakerOpen.String())
	s.Equal("half_open", BreakerHalfOpen.String())
	s.Equal("unknown", BreakerState(9).String())
}
