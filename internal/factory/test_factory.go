package factory

import (
	"time"

	"github.com/mcoot/promoclaim-go/internal/dependencies/mocks"
	"github.com/mcoot/promoclaim-go/internal/services/adminauth"
	"github.com/mcoot/promoclaim-go/internal/storage/memory"
	"github.com/mcoot/promoclaim-go/internal/testutil"
)

// TestAdminPassword is the shared secret used by NewTestApp
const TestAdminPassword = "test-admin-secret"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	adminAuth, err := adminauth.New(TestAdminPassword)
	if err != nil {
		panic(err)
	}

	app := newWithDependencies(store, mockClock, mockRandom, adminAuth, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
