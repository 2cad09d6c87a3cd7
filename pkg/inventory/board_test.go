package inventory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/korn-WK/assetskorn1/pkg/client"
)

// newBoardServer 模拟资产 API；failUsers 为 true 时 /users 返回 500 信封
func newBoardServer(t *testing.T, failUsers bool) (*httptest.Server, *int32) {
	t.Helper()
	var deletes int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/assets", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"id": 1, "asset_code": "PC-001", "name": "Laptop", "status": "active", "department_id": 1},
				{"id": 2, "asset_code": "PC-002", "name": "Desktop", "status": "broken", "department_id": 2}
			],
			"count": 2
		}`))
	})
	mux.HandleFunc("/api/assets/2", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&deletes, 1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "message": "Asset deleted successfully"}`))
			return
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/api/departments", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": [{"id": 1, "name_th": "ฝ่ายไอที"}], "count": 1}`))
	})
	mux.HandleFunc("/api/locations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": [{"id": 1, "name": "อาคาร 1"}], "count": 1}`))
	})
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if failUsers {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success": false, "error": "Failed to fetch users", "error_kind": "internal"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success": true, "data": [{"id": 1, "username": "somchai", "role": "user", "is_active": true}], "count": 1}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &deletes
}

func TestBoard_Load_FetchesAllCollections(t *testing.T) {
	srv, _ := newBoardServer(t, false)
	b := NewBoard(client.New(srv.URL+"/api"), true)

	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if len(b.Assets) != 2 {
		t.Errorf("期望 2 条资产，实际=%d", len(b.Assets))
	}
	if len(b.Departments) != 1 || len(b.Locations) != 1 {
		t.Errorf("参照数据加载不完整: depts=%d locs=%d", len(b.Departments), len(b.Locations))
	}
	if len(b.Users) != 1 {
		t.Errorf("期望管理员视图加载用户，实际=%d", len(b.Users))
	}
}

func TestBoard_Load_SkipsUsersForNonAdmin(t *testing.T) {
	// /users 故障也不影响非管理员视图：根本不会请求
	srv, _ := newBoardServer(t, true)
	b := NewBoard(client.New(srv.URL+"/api"), false)

	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if len(b.Users) != 0 {
		t.Errorf("非管理员视图不应加载用户，实际=%d", len(b.Users))
	}
}

func TestBoard_Load_AllOrNothing(t *testing.T) {
	srv, _ := newBoardServer(t, true)
	b := NewBoard(client.New(srv.URL+"/api"), true)

	// 预置旧数据，验证失败后不被覆盖
	b.Assets = []client.Asset{{ID: 99, AssetCode: "OLD-001", Name: "Old", Status: "active"}}

	if err := b.Load(context.Background()); err == nil {
		t.Fatal("期望用户请求失败导致整体失败")
	}
	if len(b.Assets) != 1 || b.Assets[0].ID != 99 {
		t.Errorf("加载失败后本地状态应保持不变，实际=%+v", b.Assets)
	}
	if b.Departments != nil || b.Locations != nil {
		t.Error("加载失败后不应写入部分结果")
	}
}

func TestBoard_Filtered(t *testing.T) {
	srv, _ := newBoardServer(t, false)
	b := NewBoard(client.New(srv.URL+"/api"), false)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load 失败: %v", err)
	}

	got := b.Filtered(Filter{Status: "broken"})
	if len(got) != 1 || got[0].AssetCode != "PC-002" {
		t.Errorf("期望过滤出 PC-002，实际=%+v", got)
	}
}

func TestBoard_Counts(t *testing.T) {
	srv, _ := newBoardServer(t, false)
	b := NewBoard(client.New(srv.URL+"/api"), false)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load 失败: %v", err)
	}

	if n := b.StatusCount("active"); n != 1 {
		t.Errorf("期望 active=1，实际=%d", n)
	}
	if n := b.DepartmentCount(2); n != 1 {
		t.Errorf("期望部门 2 有 1 条，实际=%d", n)
	}
}

func TestBoard_DeleteAsset_RemovesLocally(t *testing.T) {
	srv, deletes := newBoardServer(t, false)
	b := NewBoard(client.New(srv.URL+"/api"), false)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load 失败: %v", err)
	}

	if err := b.DeleteAsset(context.Background(), 2); err != nil {
		t.Fatalf("DeleteAsset 失败: %v", err)
	}
	if atomic.LoadInt32(deletes) != 1 {
		t.Errorf("期望删除请求发出 1 次，实际=%d", atomic.LoadInt32(deletes))
	}
	if len(b.Assets) != 1 || b.Assets[0].ID != 1 {
		t.Errorf("期望本地集合剔除 ID=2，实际=%+v", b.Assets)
	}
}

func TestBoard_DeleteAsset_FailureKeepsState(t *testing.T) {
	srv, _ := newBoardServer(t, false)
	b := NewBoard(client.New(srv.URL+"/api"), false)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load 失败: %v", err)
	}

	// /api/assets/99999 未注册路由，信封解析失败 → 返回错误
	if err := b.DeleteAsset(context.Background(), 99999); err == nil {
		t.Fatal("期望删除失败返回错误")
	}
	if len(b.Assets) != 2 {
		t.Errorf("删除失败后本地集合应保持不变，实际=%d", len(b.Assets))
	}
}
