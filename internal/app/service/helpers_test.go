package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/db"
	"github.com/elegance/restaurant-backend/pkg/mailer"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return testDB
}

func seedMenuItem(t *testing.T, testDB *gorm.DB, name, price string) model.MenuItem {
	category := model.MenuCategory{Name: name + " category"}
	require.NoError(t, testDB.Create(&category).Error)
	item := model.MenuItem{Name: name, Price: model.MustMoney(price), Image: name + ".jpg", CategoryID: category.ID}
	require.NoError(t, testDB.Create(&item).Error)
	return item
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]bool // recipients whose send fails
	nextID  int
}

func (f *fakeSender) Send(ctx context.Context, msg mailer.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, to := range msg.To {
		if f.failFor[to] {
			return "", errors.New("provider rejected " + to)
		}
	}
	f.sent = append(f.sent, msg)
	f.nextID++
	return fmt.Sprintf("msg_%d", f.nextID), nil
}

func (f *fakeSender) messages() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mailer.Message, len(f.sent))
	copy(out, f.sent)
	return out
}

type fakeMenuCache struct {
	categories []model.MenuCategory
	getErr     error
	sets       int
	cleared    int
}

func (f *fakeMenuCache) Get(ctx context.Context) ([]model.MenuCategory, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.categories, f.categories != nil, nil
}

func (f *fakeMenuCache) Set(ctx context.Context, categories []model.MenuCategory) error {
	f.categories = categories
	f.sets++
	return nil
}

func (f *fakeMenuCache) Invalidate(ctx context.Context) error {
	f.categories = nil
	f.cleared++
	return nil
}

type recordedEvent struct {
	eventType string
	orderID   uint
	status    model.OrderStatus
}

type fakePublisher struct {
	events []recordedEvent
}

func (f *fakePublisher) PublishOrderEvent(eventType string, order *model.Order) {
	f.events = append(f.events, recordedEvent{eventType: eventType, orderID: order.ID, status: order.Status})
}

type fakeNotifier struct {
	notified []model.Reservation
}

func (f *fakeNotifier) NotifyReservation(reservation model.Reservation) {
	f.notified = append(f.notified, reservation)
}

type fakeStorage struct {
	keys []string
	err  error
}

func (f *fakeStorage) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}
