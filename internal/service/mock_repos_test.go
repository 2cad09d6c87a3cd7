package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/korn-WK/assetskorn1/internal/model"
	"github.com/korn-WK/assetskorn1/internal/repository"
)

// ── Mock AssetRepository ──

type mockAssetRepo struct {
	assets []*model.Asset
	nextID int64

	// 联查名称映射（按需填充）
	deptNames  map[int64]string
	ownerNames map[int64]string
	locNames   map[int64]string
}

func newMockAssetRepo() *mockAssetRepo {
	return &mockAssetRepo{
		nextID:     1,
		deptNames:  make(map[int64]string),
		ownerNames: make(map[int64]string),
		locNames:   make(map[int64]string),
	}
}

// toRow 模拟 LEFT JOIN：参照表缺失时名称为 nil
func (m *mockAssetRepo) toRow(a *model.Asset) model.AssetRow {
	row := model.AssetRow{Asset: *a}
	if a.DepartmentID != nil {
		if name, ok := m.deptNames[*a.DepartmentID]; ok {
			row.DepartmentName = &name
		}
	}
	if a.OwnerID != nil {
		if name, ok := m.ownerNames[*a.OwnerID]; ok {
			row.OwnerName = &name
		}
	}
	if a.LocationID != nil {
		if name, ok := m.locNames[*a.LocationID]; ok {
			row.LocationName = &name
		}
	}
	return row
}

func (m *mockAssetRepo) List(_ context.Context) ([]model.AssetRow, error) {
	// created_at DESC：后插入的在前
	rows := make([]model.AssetRow, 0, len(m.assets))
	for i := len(m.assets) - 1; i >= 0; i-- {
		rows = append(rows, m.toRow(m.assets[i]))
	}
	return rows, nil
}

func (m *mockAssetRepo) GetByID(_ context.Context, id int64) (*model.AssetRow, error) {
	for _, a := range m.assets {
		if a.ID == id {
			row := m.toRow(a)
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssetRepo) GetByCode(_ context.Context, code string) (*model.Asset, error) {
	for _, a := range m.assets {
		if a.AssetCode == code {
			clone := *a
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssetRepo) ListByStatus(_ context.Context, status string) ([]model.AssetRow, error) {
	rows := make([]model.AssetRow, 0)
	for i := len(m.assets) - 1; i >= 0; i-- {
		if m.assets[i].Status == status {
			rows = append(rows, m.toRow(m.assets[i]))
		}
	}
	return rows, nil
}

func (m *mockAssetRepo) Create(_ context.Context, asset *model.Asset) error {
	asset.ID = m.nextID
	m.nextID++
	now := time.Now()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	m.assets = append(m.assets, asset)
	return nil
}

func (m *mockAssetRepo) Update(_ context.Context, id int64, asset *model.Asset) (int64, error) {
	for _, a := range m.assets {
		if a.ID == id {
			a.AssetCode = asset.AssetCode
			a.Name = asset.Name
			a.Description = asset.Description
			a.LocationID = asset.LocationID
			a.Location = asset.Location
			a.Status = asset.Status
			a.DepartmentID = asset.DepartmentID
			a.OwnerID = asset.OwnerID
			a.ImageURL = asset.ImageURL
			a.AcquiredDate = asset.AcquiredDate
			a.UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockAssetRepo) Delete(_ context.Context, id int64) (int64, error) {
	for i, a := range m.assets {
		if a.ID == id {
			m.assets = append(m.assets[:i], m.assets[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockAssetRepo) CountByStatus(_ context.Context) ([]repository.StatusTally, error) {
	counts := make(map[string]int64)
	for _, a := range m.assets {
		counts[a.Status]++
	}
	tallies := make([]repository.StatusTally, 0, len(counts))
	for status, count := range counts {
		tallies = append(tallies, repository.StatusTally{Status: status, Count: count})
	}
	return tallies, nil
}

func (m *mockAssetRepo) CountByDepartment(_ context.Context) ([]repository.DepartmentTally, error) {
	byID := make(map[int64]int64)
	var nilCount int64
	for _, a := range m.assets {
		if a.DepartmentID == nil {
			nilCount++
			continue
		}
		byID[*a.DepartmentID]++
	}
	tallies := make([]repository.DepartmentTally, 0, len(byID)+1)
	for id, count := range byID {
		deptID := id
		tally := repository.DepartmentTally{DepartmentID: &deptID, Count: count}
		if name, ok := m.deptNames[id]; ok {
			tally.DepartmentName = &name
		}
		tallies = append(tallies, tally)
	}
	if nilCount > 0 {
		tallies = append(tallies, repository.DepartmentTally{Count: nilCount})
	}
	return tallies, nil
}

func (m *mockAssetRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.assets)), nil
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts []model.Department
	calls int
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{}
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	m.calls++
	return m.depts, nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations []model.Location
	calls     int
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{}
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	m.calls++
	return m.locations, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users []model.User
	calls int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{}
}

func (m *mockUserRepo) ListActive(_ context.Context) ([]model.User, error) {
	m.calls++
	active := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		if u.IsActive {
			active = append(active, u)
		}
	}
	return active, nil
}
