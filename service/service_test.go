package service

import (
	"Tipbox/dao"
	"Tipbox/dao/cache"
	"Tipbox/models"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type testEnv struct {
	Tips    *TipService
	Likes   *LikeService
	TipDAO  *dao.TipDAO
	Redis   *miniredis.Miniredis
	DB      *gorm.DB
	admin   models.Actor
	member  models.Actor
	member2 models.Actor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// 内存库限制单连接，避免连接池各拿一个空库
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Tip{}, &models.TipLike{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	tipDAO := dao.NewTipDAO(db)
	likeDAO := dao.NewTipLikeDAO(db)
	storage := cache.NewTipOfDayStorage(rds)

	return &testEnv{
		Tips:    &TipService{TipDAO: tipDAO, TipOfDay: storage},
		Likes:   &LikeService{TipDAO: tipDAO, TipLikeDAO: likeDAO},
		TipDAO:  tipDAO,
		Redis:   mr,
		DB:      db,
		admin:   models.Actor{ID: 1, Role: models.RoleAdmin},
		member:  models.Actor{ID: 2, Role: models.RoleMember},
		member2: models.Actor{ID: 3, Role: models.RoleMember},
	}
}
