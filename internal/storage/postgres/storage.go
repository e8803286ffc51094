package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dernekapp/memberregistry-go/internal/model"
	"github.com/dernekapp/memberregistry-go/internal/storage"
)

// memberRow is the store-side row shape. Column names match the hosted
// member table; the application's TCID maps onto the id primary key.
type memberRow struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Surname     string    `gorm:"column:surname"`
	PhoneNumber string    `gorm:"column:phoneNumber"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (memberRow) TableName() string {
	return "members"
}

func (r *memberRow) toModel() *model.Member {
	return &model.Member{
		TCID:        model.TCID(r.ID),
		Name:        r.Name,
		Surname:     r.Surname,
		PhoneNumber: r.PhoneNumber,
		CreatedAt:   r.CreatedAt,
	}
}

// Storage is a PostgreSQL-backed implementation of the member store
type Storage struct {
	db *gorm.DB
}

// New connects to the database, configures the connection pool and
// migrates the members table
func New(cfg Config) (*Storage, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return NewWithDB(db)
}

// NewWithDB creates a Storage with an existing GORM connection (for testing).
// The connection must be opened with TranslateError enabled so duplicate-key
// and not-found outcomes are distinguishable.
func NewWithDB(db *gorm.DB) (*Storage, error) {
	if err := db.AutoMigrate(&memberRow{}); err != nil {
		return nil, fmt.Errorf("auto migrate failed: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure Storage implements the interface
var _ storage.MemberStore = (*Storage)(nil)

func (s *Storage) ListMembers(ctx context.Context) ([]*model.Member, error) {
	var rows []memberRow
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]*model.Member, len(rows))
	for i := range rows {
		members[i] = rows[i].toModel()
	}
	return members, nil
}

func (s *Storage) GetMember(ctx context.Context, id model.TCID) (*model.Member, error) {
	var row memberRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMemberNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *Storage) InsertMember(ctx context.Context, member *model.Member) (*model.Member, error) {
	row := memberRow{
		ID:          string(member.TCID),
		Name:        member.Name,
		Surname:     member.Surname,
		PhoneNumber: member.PhoneNumber,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrMemberExists
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *Storage) UpdateMember(ctx context.Context, id model.TCID, update model.MemberUpdate) (*model.Member, error) {
	// The identity number is write-once: the update payload carries only
	// the mutable columns.
	res := s.db.WithContext(ctx).Model(&memberRow{}).Where("id = ?", string(id)).
		Updates(map[string]any{
			"name":        update.Name,
			"surname":     update.Surname,
			"phoneNumber": update.PhoneNumber,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrMemberNotFound
	}
	return s.GetMember(ctx, id)
}

func (s *Storage) DeleteMember(ctx context.Context, id model.TCID) error {
	return s.db.WithContext(ctx).Delete(&memberRow{}, "id = ?", string(id)).Error
}
