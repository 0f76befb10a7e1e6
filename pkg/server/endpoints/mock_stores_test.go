package endpoints

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// MockPostsStore implements store.PostsStore for testing using testify/mock
type MockPostsStore struct {
	mock.Mock
}

func NewMockPostsStore() *MockPostsStore {
	return &MockPostsStore{}
}

func (m *MockPostsStore) List(filter store.PostFilter) (*store.PostPage, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.PostPage), args.Error(1)
}

func (m *MockPostsStore) GetBySlug(slug string) (*model.Post, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostsStore) GetByID(id uint) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostsStore) Create(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostsStore) Update(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostsStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostsStore) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostsStore) IncrementViewCount(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostsStore) IncrementShareCount(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostsStore) CountCreatedSince(since time.Time) (int64, error) {
	args := m.Called(since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostsStore) CountForCountrySince(countryID uint, since time.Time) (int64, error) {
	args := m.Called(countryID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostsStore) CountByRegionSince(since time.Time) ([]store.RegionCount, error) {
	args := m.Called(since)
	return args.Get(0).([]store.RegionCount), args.Error(1)
}

func (m *MockPostsStore) RecentTechnologyIDs(countryID uint, since time.Time) ([]uint, error) {
	args := m.Called(countryID, since)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPostsStore) PublishedStatsSince(since time.Time) (*store.PostStats, error) {
	args := m.Called(since)
	stats, _ := args.Get(0).(*store.PostStats)
	return stats, args.Error(1)
}

// MockCountriesStore implements store.CountriesStore for testing using testify/mock
type MockCountriesStore struct {
	mock.Mock
}

func NewMockCountriesStore() *MockCountriesStore {
	return &MockCountriesStore{}
}

func (m *MockCountriesStore) List() ([]model.Country, error) {
	args := m.Called()
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockCountriesStore) ListByRegion(region string) ([]model.Country, error) {
	args := m.Called(region)
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockCountriesStore) GetByID(id uint) (*model.Country, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockCountriesStore) GetByCode(code string) (*model.Country, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockCountriesStore) Regions() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCountriesStore) Upsert(country *model.Country) error {
	args := m.Called(country)
	return args.Error(0)
}

// MockTechnologiesStore implements store.TechnologiesStore for testing using testify/mock
type MockTechnologiesStore struct {
	mock.Mock
}

func NewMockTechnologiesStore() *MockTechnologiesStore {
	return &MockTechnologiesStore{}
}

func (m *MockTechnologiesStore) List() ([]model.Technology, error) {
	args := m.Called()
	return args.Get(0).([]model.Technology), args.Error(1)
}

func (m *MockTechnologiesStore) ListByCategories(categories []string) ([]model.Technology, error) {
	args := m.Called(categories)
	return args.Get(0).([]model.Technology), args.Error(1)
}

func (m *MockTechnologiesStore) GetByID(id uint) (*model.Technology, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Technology), args.Error(1)
}

func (m *MockTechnologiesStore) Upsert(technology *model.Technology) error {
	args := m.Called(technology)
	return args.Error(0)
}

// MockSettingsStore implements store.SettingsStore for testing using testify/mock
type MockSettingsStore struct {
	mock.Mock
}

func NewMockSettingsStore() *MockSettingsStore {
	return &MockSettingsStore{}
}

func (m *MockSettingsStore) Get(key string) (*model.Setting, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Setting), args.Error(1)
}

func (m *MockSettingsStore) List() ([]model.Setting, error) {
	args := m.Called()
	return args.Get(0).([]model.Setting), args.Error(1)
}

func (m *MockSettingsStore) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSettingsStore) Upsert(setting *model.Setting) error {
	args := m.Called(setting)
	return args.Error(0)
}

// MockSubscribersStore implements store.SubscribersStore for testing using testify/mock
type MockSubscribersStore struct {
	mock.Mock
}

func NewMockSubscribersStore() *MockSubscribersStore {
	return &MockSubscribersStore{}
}

func (m *MockSubscribersStore) Subscribe(subscriber *model.Subscriber) error {
	args := m.Called(subscriber)
	return args.Error(0)
}

func (m *MockSubscribersStore) GetByEmail(email string) (*model.Subscriber, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscribersStore) Unsubscribe(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockSubscribersStore) ListActive() ([]model.Subscriber, error) {
	args := m.Called()
	return args.Get(0).([]model.Subscriber), args.Error(1)
}

func (m *MockSubscribersStore) CountActive() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockSharesStore implements store.SharesStore for testing using testify/mock
type MockSharesStore struct {
	mock.Mock
}

func NewMockSharesStore() *MockSharesStore {
	return &MockSharesStore{}
}

func (m *MockSharesStore) Create(share *model.SocialShare) error {
	args := m.Called(share)
	return args.Error(0)
}

func (m *MockSharesStore) Update(share *model.SocialShare) error {
	args := m.Called(share)
	return args.Error(0)
}

func (m *MockSharesStore) ListDue(now time.Time) ([]model.SocialShare, error) {
	args := m.Called(now)
	return args.Get(0).([]model.SocialShare), args.Error(1)
}

func (m *MockSharesStore) ListByPost(postID uint) ([]model.SocialShare, error) {
	args := m.Called(postID)
	return args.Get(0).([]model.SocialShare), args.Error(1)
}

func (m *MockSharesStore) ListScheduled() ([]model.SocialShare, error) {
	args := m.Called()
	return args.Get(0).([]model.SocialShare), args.Error(1)
}

func (m *MockSharesStore) CountByPlatform() ([]store.PlatformCount, error) {
	args := m.Called()
	return args.Get(0).([]store.PlatformCount), args.Error(1)
}

func (m *MockSharesStore) CountByStatus() ([]store.ShareStatusCount, error) {
	args := m.Called()
	return args.Get(0).([]store.ShareStatusCount), args.Error(1)
}

// MockMediaStore implements store.MediaStore for testing using testify/mock
type MockMediaStore struct {
	mock.Mock
}

func NewMockMediaStore() *MockMediaStore {
	return &MockMediaStore{}
}

func (m *MockMediaStore) ListByPost(postID uint) ([]model.MediaAsset, error) {
	args := m.Called(postID)
	return args.Get(0).([]model.MediaAsset), args.Error(1)
}

func (m *MockMediaStore) Create(asset *model.MediaAsset) error {
	args := m.Called(asset)
	return args.Error(0)
}

func (m *MockMediaStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) GetByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockAnalyticsStore implements store.AnalyticsStore for testing using testify/mock
type MockAnalyticsStore struct {
	mock.Mock
}

func NewMockAnalyticsStore() *MockAnalyticsStore {
	return &MockAnalyticsStore{}
}

func (m *MockAnalyticsStore) Overview() (*store.Overview, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Overview), args.Error(1)
}

func (m *MockAnalyticsStore) TopPosts(limit int) ([]model.Post, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.Post), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}
