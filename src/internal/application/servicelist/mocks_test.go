package servicelist

import (
	"testing"

	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/jackyeh168/autoservice/src/internal/domain/servicelist"
	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ===========================
// 測試輔助函數
// ===========================

func newItem(t *testing.T, serviceID, net string, quantity int, discount pricing.Discount) lineitem.LineItem {
	t.Helper()
	base, err := pricing.PriceFromNet(decimal.RequireFromString(net))
	require.NoError(t, err)
	item, err := lineitem.NewLineItem(lineitem.NewRowID(), lineitem.ServiceID(serviceID), "Service "+serviceID, quantity, base, discount, nil)
	require.NoError(t, err)
	return item
}

func newCollection(t *testing.T, items ...lineitem.LineItem) lineitem.Collection {
	t.Helper()
	c, err := lineitem.NewCollection(items...)
	require.NoError(t, err)
	return c
}

// seedList 直接放入 mock 倉儲的既有清單
func seedList(t *testing.T, repo *MockServiceListRepository, kind servicelist.OwnerKind, id string, items lineitem.Collection) *servicelist.ServiceList {
	t.Helper()
	owner, err := servicelist.NewOwnerRef(kind, id)
	require.NoError(t, err)
	list, err := servicelist.NewServiceList(owner, items)
	require.NoError(t, err)
	list.PullEvents()
	repo.lists[owner.String()] = list
	return list
}

// ===========================
// Mock Repository
// ===========================

type MockServiceListRepository struct {
	lists map[string]*servicelist.ServiceList

	FindErr error

	SaveCallCount   int
	UpdateCallCount int
	FindCallCount   int
}

func NewMockServiceListRepository() *MockServiceListRepository {
	return &MockServiceListRepository{
		lists: make(map[string]*servicelist.ServiceList),
	}
}

func (m *MockServiceListRepository) Save(ctx shared.TransactionContext, list *servicelist.ServiceList) error {
	m.SaveCallCount++
	key := list.Owner().String()
	if _, exists := m.lists[key]; exists {
		return servicelist.ErrListAlreadyExists
	}
	m.lists[key] = list
	return nil
}

func (m *MockServiceListRepository) FindByID(ctx shared.TransactionContext, listID servicelist.ListID) (*servicelist.ServiceList, error) {
	m.FindCallCount++
	for _, list := range m.lists {
		if list.ListID().Equals(listID) {
			return list, nil
		}
	}
	return nil, servicelist.ErrListNotFound
}

func (m *MockServiceListRepository) FindByOwner(ctx shared.TransactionContext, owner servicelist.OwnerRef) (*servicelist.ServiceList, error) {
	m.FindCallCount++
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	if list, exists := m.lists[owner.String()]; exists {
		return list, nil
	}
	return nil, servicelist.ErrListNotFound
}

func (m *MockServiceListRepository) Update(ctx shared.TransactionContext, list *servicelist.ServiceList) error {
	m.UpdateCallCount++
	key := list.Owner().String()
	if _, exists := m.lists[key]; !exists {
		return servicelist.ErrListNotFound
	}
	m.lists[key] = list
	return nil
}

// ===========================
// Mock TransactionManager
// ===========================

type MockTransactionManager struct {
	InTransactionCallCount int
	ShouldFail             bool
	FailError              error
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	if m.ShouldFail {
		return m.FailError
	}
	return fn(nil)
}

// ===========================
// Mock EventPublisher
// ===========================

type MockEventPublisher struct {
	Published []shared.DomainEvent
	Err       error
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	return m.PublishBatch([]shared.DomainEvent{event})
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	if m.Err != nil {
		return m.Err
	}
	m.Published = append(m.Published, events...)
	return nil
}
