// exposes a Store interface so endpoints can be tested against fakes
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// iqamah functions
	ListIqamahTimes() ([]model.IqamahTime, error)
	GetIqamahMap() (map[string]string, error)
	UpsertIqamahTime(prayerName, iqamahTime string) error

	// sign settings functions
	GetSignSettings() (model.SignSettings, error)
	SaveSignSettings(s model.SignSettings) (model.SignSettings, error)

	// downtime rule functions
	ListDowntimeRules(activeOnly bool) ([]model.DowntimeRule, error)
	GetDowntimeRule(id int) (model.DowntimeRule, error)
	CreateDowntimeRule(r model.DowntimeRule) (model.DowntimeRule, error)
	UpdateDowntimeRule(r model.DowntimeRule) (model.DowntimeRule, error)
	DeleteDowntimeRule(id int) error

	// announcement functions
	CreateAnnouncement(a model.Announcement) (model.Announcement, error)
	GetAnnouncementByID(id int) (model.Announcement, error)
	ListAnnouncements() ([]model.Announcement, error)
	ListEligibleAnnouncements(today time.Time, limit int) ([]model.Announcement, error)
	UpdateAnnouncement(a model.Announcement) (model.Announcement, error)
	DeleteAnnouncement(id int) error

	// board member functions
	ListBoardMembers() ([]model.BoardMember, error)
	GetBoardMemberByID(id int) (model.BoardMember, error)
	CreateBoardMember(m model.BoardMember) (model.BoardMember, error)
	UpdateBoardMember(m model.BoardMember) (model.BoardMember, error)
	DeleteBoardMember(id int) error

	// trustee functions
	ListTrustees() ([]model.Trustee, error)
	CreateTrustee(t model.Trustee) (model.Trustee, error)
	UpdateTrustee(t model.Trustee) (model.Trustee, error)
	DeleteTrustee(id int) error

	// donation cause functions
	ListDonationCauses(activeOnly bool) ([]model.DonationCause, error)
	GetDonationCauseByID(id int) (model.DonationCause, error)
	CreateDonationCause(c model.DonationCause) (model.DonationCause, error)
	UpdateDonationCause(c model.DonationCause) (model.DonationCause, error)
	DeleteDonationCause(id int) error

	// youth program functions
	ListYouthPrograms() ([]model.YouthProgram, error)
	GetYouthProgramByID(id int) (model.YouthProgram, error)
	CreateYouthProgram(p model.YouthProgram) (model.YouthProgram, error)
	UpdateYouthProgram(p model.YouthProgram) (model.YouthProgram, error)
	DeleteYouthProgram(id int) error
	CreateYouthSubprogram(s model.YouthSubprogram) (model.YouthSubprogram, error)
	DeleteYouthSubprogram(id int) error

	// annual report functions
	ListAnnualReports() ([]model.AnnualReport, error)
	GetAnnualReportByID(id int) (model.AnnualReport, error)
	CreateAnnualReport(r model.AnnualReport) (model.AnnualReport, error)
	DeleteAnnualReport(id int) error

	// display order
	ReorderEntities(table string, orderedIDs []int) error

	// subscriber functions
	ListSubscribers() ([]model.Subscriber, error)
	ListSubscriberEmails() ([]string, error)
	CreateSubscriber(email string, name *string) (model.Subscriber, error)
	DeleteSubscriber(id int) error
	DeleteSubscriberByEmail(email string) error

	// screen functions
	GetScreenByID(id int) (model.Screen, error)
	GetScreenByDeviceID(deviceID string) (model.Screen, error)
	IsScreenPairedByDeviceID(deviceID string) (bool, error)
	ListScreens() ([]model.Screen, error)
	CreateScreen(name string, location *string) (model.Screen, error)
	UpdateScreen(id int, name, location *string) error
	PairScreen(id int, deviceID string) error
	UnpairScreen(id int) error
	DeleteScreen(id int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}

func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	return GetUserByEmail(email)
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	return GetUserByID(id)
}

func (s *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}

func (s *pgStore) ListIqamahTimes() ([]model.IqamahTime, error) { return ListIqamahTimes() }
func (s *pgStore) GetIqamahMap() (map[string]string, error)     { return GetIqamahMap() }

func (s *pgStore) UpsertIqamahTime(prayerName, iqamahTime string) error {
	return UpsertIqamahTime(prayerName, iqamahTime)
}

func (s *pgStore) GetSignSettings() (model.SignSettings, error) { return GetSignSettings() }

func (s *pgStore) SaveSignSettings(v model.SignSettings) (model.SignSettings, error) {
	return SaveSignSettings(v)
}

func (s *pgStore) ListDowntimeRules(activeOnly bool) ([]model.DowntimeRule, error) {
	return ListDowntimeRules(activeOnly)
}

func (s *pgStore) GetDowntimeRule(id int) (model.DowntimeRule, error) {
	return GetDowntimeRule(id)
}

func (s *pgStore) CreateDowntimeRule(r model.DowntimeRule) (model.DowntimeRule, error) {
	return CreateDowntimeRule(r)
}

func (s *pgStore) UpdateDowntimeRule(r model.DowntimeRule) (model.DowntimeRule, error) {
	return UpdateDowntimeRule(r)
}

func (s *pgStore) DeleteDowntimeRule(id int) error { return DeleteDowntimeRule(id) }

func (s *pgStore) CreateAnnouncement(a model.Announcement) (model.Announcement, error) {
	return CreateAnnouncement(a)
}

func (s *pgStore) GetAnnouncementByID(id int) (model.Announcement, error) {
	return GetAnnouncementByID(id)
}

func (s *pgStore) ListAnnouncements() ([]model.Announcement, error) { return ListAnnouncements() }

func (s *pgStore) ListEligibleAnnouncements(today time.Time, limit int) ([]model.Announcement, error) {
	return ListEligibleAnnouncements(today, limit)
}

func (s *pgStore) UpdateAnnouncement(a model.Announcement) (model.Announcement, error) {
	return UpdateAnnouncement(a)
}

func (s *pgStore) DeleteAnnouncement(id int) error { return DeleteAnnouncement(id) }

func (s *pgStore) ListBoardMembers() ([]model.BoardMember, error) { return ListBoardMembers() }

func (s *pgStore) GetBoardMemberByID(id int) (model.BoardMember, error) {
	return GetBoardMemberByID(id)
}

func (s *pgStore) CreateBoardMember(m model.BoardMember) (model.BoardMember, error) {
	return CreateBoardMember(m)
}

func (s *pgStore) UpdateBoardMember(m model.BoardMember) (model.BoardMember, error) {
	return UpdateBoardMember(m)
}

func (s *pgStore) DeleteBoardMember(id int) error { return DeleteBoardMember(id) }

func (s *pgStore) ListTrustees() ([]model.Trustee, error) { return ListTrustees() }

func (s *pgStore) CreateTrustee(t model.Trustee) (model.Trustee, error) { return CreateTrustee(t) }
func (s *pgStore) UpdateTrustee(t model.Trustee) (model.Trustee, error) { return UpdateTrustee(t) }
func (s *pgStore) DeleteTrustee(id int) error                           { return DeleteTrustee(id) }

func (s *pgStore) ListDonationCauses(activeOnly bool) ([]model.DonationCause, error) {
	return ListDonationCauses(activeOnly)
}

func (s *pgStore) GetDonationCauseByID(id int) (model.DonationCause, error) {
	return GetDonationCauseByID(id)
}

func (s *pgStore) CreateDonationCause(c model.DonationCause) (model.DonationCause, error) {
	return CreateDonationCause(c)
}

func (s *pgStore) UpdateDonationCause(c model.DonationCause) (model.DonationCause, error) {
	return UpdateDonationCause(c)
}

func (s *pgStore) DeleteDonationCause(id int) error { return DeleteDonationCause(id) }

func (s *pgStore) ListYouthPrograms() ([]model.YouthProgram, error) { return ListYouthPrograms() }

func (s *pgStore) GetYouthProgramByID(id int) (model.YouthProgram, error) {
	return GetYouthProgramByID(id)
}

func (s *pgStore) CreateYouthProgram(p model.YouthProgram) (model.YouthProgram, error) {
	return CreateYouthProgram(p)
}

func (s *pgStore) UpdateYouthProgram(p model.YouthProgram) (model.YouthProgram, error) {
	return UpdateYouthProgram(p)
}

func (s *pgStore) DeleteYouthProgram(id int) error { return DeleteYouthProgram(id) }

func (s *pgStore) CreateYouthSubprogram(v model.YouthSubprogram) (model.YouthSubprogram, error) {
	return CreateYouthSubprogram(v)
}

func (s *pgStore) DeleteYouthSubprogram(id int) error { return DeleteYouthSubprogram(id) }

func (s *pgStore) ListAnnualReports() ([]model.AnnualReport, error) { return ListAnnualReports() }

func (s *pgStore) GetAnnualReportByID(id int) (model.AnnualReport, error) {
	return GetAnnualReportByID(id)
}

func (s *pgStore) CreateAnnualReport(r model.AnnualReport) (model.AnnualReport, error) {
	return CreateAnnualReport(r)
}

func (s *pgStore) DeleteAnnualReport(id int) error { return DeleteAnnualReport(id) }

func (s *pgStore) ReorderEntities(table string, orderedIDs []int) error {
	return ReorderEntities(table, orderedIDs)
}

func (s *pgStore) ListSubscribers() ([]model.Subscriber, error) { return ListSubscribers() }
func (s *pgStore) ListSubscriberEmails() ([]string, error)      { return ListSubscriberEmails() }

func (s *pgStore) CreateSubscriber(email string, name *string) (model.Subscriber, error) {
	return CreateSubscriber(email, name)
}

func (s *pgStore) DeleteSubscriber(id int) error { return DeleteSubscriber(id) }

func (s *pgStore) DeleteSubscriberByEmail(email string) error {
	return DeleteSubscriberByEmail(email)
}

func (s *pgStore) GetScreenByID(id int) (model.Screen, error) { return GetScreenByID(id) }

func (s *pgStore) GetScreenByDeviceID(deviceID string) (model.Screen, error) {
	return GetScreenByDeviceID(deviceID)
}

func (s *pgStore) IsScreenPairedByDeviceID(deviceID string) (bool, error) {
	return IsScreenPairedByDeviceID(deviceID)
}

func (s *pgStore) ListScreens() ([]model.Screen, error) { return ListScreens() }

func (s *pgStore) CreateScreen(name string, location *string) (model.Screen, error) {
	return CreateScreen(name, location)
}

func (s *pgStore) UpdateScreen(id int, name, location *string) error {
	return UpdateScreen(id, name, location)
}

func (s *pgStore) PairScreen(id int, deviceID string) error { return PairScreen(id, deviceID) }
func (s *pgStore) UnpairScreen(id int) error                { return UnpairScreen(id) }
func (s *pgStore) DeleteScreen(id int) error                { return DeleteScreen(id) }
