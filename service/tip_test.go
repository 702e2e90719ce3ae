package service

import (
	"Tipbox/models"
	"Tipbox/pkg/response"
	"Tipbox/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestCreateTip_Admin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tip, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
		Title:   "早睡早起",
		Content: "每天十一点前睡觉",
	})
	if err != nil {
		t.Fatalf("create tip: %v", err)
	}
	if tip.ID == 0 {
		t.Fatal("expected non-zero tip id")
	}
	if tip.LikesCount != 0 {
		t.Fatalf("expected likes_count 0, got %d", tip.LikesCount)
	}
	if tip.Title != "早睡早起" || tip.Content != "每天十一点前睡觉" {
		t.Fatalf("unexpected fields: %+v", tip)
	}
}

func TestCreateTip_NonAdminForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 有效载荷也一样被拒
	_, err := env.Tips.CreateTip(ctx, env.member, &types.CreateTipRequest{
		Title:   "合法标题",
		Content: "合法内容",
	})
	assertBizCode(t, err, 403)

	_, err = env.Tips.UpdateTip(ctx, env.member, 1, &types.UpdateTipRequest{
		Title:   "合法标题",
		Content: "合法内容",
	})
	assertBizCode(t, err, 403)

	err = env.Tips.DeleteTip(ctx, env.member, 1)
	assertBizCode(t, err, 403)
}

func TestCreateTip_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		title   string
		content string
		field   string
	}{
		{"empty title", "", "内容", "title"},
		{"blank title", "   ", "内容", "title"},
		{"title too long", strings.Repeat("长", 256), "内容", "title"},
		{"empty content", "标题", "", "content"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
				Title:   tc.title,
				Content: tc.content,
			})
			var be *response.BizError
			if !errors.As(err, &be) {
				t.Fatalf("expected BizError, got %v", err)
			}
			if be.Code != 422 {
				t.Fatalf("expected 422, got %d", be.Code)
			}
			if _, ok := be.Fields[tc.field]; !ok {
				t.Fatalf("expected field error for %q, got %v", tc.field, be.Fields)
			}
		})
	}

	// 255 字符的标题是合法边界
	_, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
		Title:   strings.Repeat("长", 255),
		Content: "内容",
	})
	if err != nil {
		t.Fatalf("255-rune title should pass: %v", err)
	}
}

func TestUpdateDeleteTip_NotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Tips.UpdateTip(ctx, env.admin, 12345, &types.UpdateTipRequest{
		Title:   "标题",
		Content: "内容",
	})
	assertBizCode(t, err, 404)

	err = env.Tips.DeleteTip(ctx, env.admin, 12345)
	assertBizCode(t, err, 404)
}

func TestListTips_Order(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	older := &models.Tip{ID: 101, Title: "旧", Content: "旧内容", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Tip{ID: 102, Title: "新", Content: "新内容", CreatedAt: time.Now()}
	if err := env.TipDAO.Create(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := env.TipDAO.Create(ctx, newer); err != nil {
		t.Fatal(err)
	}

	tips, err := env.Tips.ListTips(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tips) != 2 {
		t.Fatalf("expected 2 tips, got %d", len(tips))
	}
	if tips[0].ID != 102 || tips[1].ID != 101 {
		t.Fatalf("expected newest first, got %d, %d", tips[0].ID, tips[1].ID)
	}
}

func TestGetTipOfDay_StableWithinDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 5; i++ {
		_, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
			Title:   fmt.Sprintf("贴士 %d", i),
			Content: "内容",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	first, err := env.Tips.GetTipOfDay(ctx, now)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := env.Tips.GetTipOfDay(ctx, now)
		if err != nil {
			t.Fatalf("repeat call: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("pick changed within day: %d -> %d", first.ID, again.ID)
		}
	}
}

func TestGetTipOfDay_ReturnsFreshData(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()

	_, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
		Title:   "唯一贴士",
		Content: "内容",
	})
	if err != nil {
		t.Fatal(err)
	}

	first, err := env.Tips.GetTipOfDay(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if first.LikesCount != 0 {
		t.Fatalf("expected 0 likes, got %d", first.LikesCount)
	}

	// 点赞不失效缓存，但返回的数据必须是最新的
	if _, _, err := env.Likes.ToggleLike(ctx, env.member, first.ID); err != nil {
		t.Fatal(err)
	}

	again, err := env.Tips.GetTipOfDay(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != first.ID {
		t.Fatalf("pick changed: %d -> %d", first.ID, again.ID)
	}
	if again.LikesCount != 1 {
		t.Fatalf("expected fresh likes_count 1, got %d", again.LikesCount)
	}
	if len(again.Likes) != 1 {
		t.Fatalf("expected 1 like relation loaded, got %d", len(again.Likes))
	}
}

func TestGetTipOfDay_EmptyStoreSentinel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()

	_, err := env.Tips.GetTipOfDay(ctx, now)
	assertBizCode(t, err, 404)

	// 哨兵已写入：当天即使随后创建了贴士也不再抽取
	_, err = env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
		Title:   "新贴士",
		Content: "内容",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = env.Tips.GetTipOfDay(ctx, now)
	assertBizCode(t, err, 404)
}

func TestGetTipOfDay_CachedTipGoneIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()

	tip, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
		Title:   "贴士",
		Content: "内容",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := env.Tips.GetTipOfDay(ctx, now); err != nil {
		t.Fatal(err)
	}

	// 绕过业务删除直接清库：缓存里的ID指向不存在的记录时直接报 404，不重新抽取
	if err := env.TipDAO.DeleteWithLikes(ctx, tip.ID); err != nil {
		t.Fatal(err)
	}

	_, err = env.Tips.GetTipOfDay(ctx, now)
	assertBizCode(t, err, 404)
}

// 更新/删除命中当日缓存时，失效的是每日抽取实际写入的那个按日期键控的条目
func TestUpdateTip_InvalidatesDateKeyedEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()
	day := now.Format("2006-01-02")
	cacheKey := "tip:day:" + day

	tip, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
		Title:   "贴士",
		Content: "内容",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := env.Tips.GetTipOfDay(ctx, now); err != nil {
		t.Fatal(err)
	}
	if !env.Redis.Exists(cacheKey) {
		t.Fatal("expected date-keyed cache entry after daily lookup")
	}

	if _, err := env.Tips.UpdateTip(ctx, env.admin, tip.ID, &types.UpdateTipRequest{
		Title:   "改后的标题",
		Content: "改后的内容",
	}); err != nil {
		t.Fatal(err)
	}
	if env.Redis.Exists(cacheKey) {
		t.Fatal("expected cache entry invalidated after update")
	}

	// 下一次访问重新抽取，并立即看到新字段
	again, err := env.Tips.GetTipOfDay(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if again.Title != "改后的标题" {
		t.Fatalf("expected fresh title, got %q", again.Title)
	}
}

func TestDeleteTip_InvalidatesAndEmptyStoreIs404(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()
	cacheKey := "tip:day:" + now.Format("2006-01-02")

	tip, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{
		Title:   "贴士",
		Content: "内容",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := env.Tips.GetTipOfDay(ctx, now); err != nil {
		t.Fatal(err)
	}

	if err := env.Tips.DeleteTip(ctx, env.admin, tip.ID); err != nil {
		t.Fatal(err)
	}
	if env.Redis.Exists(cacheKey) {
		t.Fatal("expected cache entry invalidated after delete")
	}

	// 库已空：重新抽取得到哨兵，返回 404
	_, err = env.Tips.GetTipOfDay(ctx, now)
	assertBizCode(t, err, 404)
}

// 不命中当日缓存的更新不应误删缓存
func TestUpdateOtherTip_KeepsCacheEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()
	cacheKey := "tip:day:" + now.Format("2006-01-02")

	a, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{Title: "A", Content: "a"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := env.Tips.CreateTip(ctx, env.admin, &types.CreateTipRequest{Title: "B", Content: "b"})
	if err != nil {
		t.Fatal(err)
	}

	picked, err := env.Tips.GetTipOfDay(ctx, now)
	if err != nil {
		t.Fatal(err)
	}

	other := a.ID
	if picked.ID == a.ID {
		other = b.ID
	}

	if _, err := env.Tips.UpdateTip(ctx, env.admin, other, &types.UpdateTipRequest{
		Title:   "改标题",
		Content: "改内容",
	}); err != nil {
		t.Fatal(err)
	}
	if !env.Redis.Exists(cacheKey) {
		t.Fatal("cache entry for a different tip must survive")
	}

	again, err := env.Tips.GetTipOfDay(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != picked.ID {
		t.Fatalf("pick changed after unrelated update: %d -> %d", picked.ID, again.ID)
	}
}

func assertBizCode(t *testing.T, err error, code int) {
	t.Helper()
	var be *response.BizError
	if !errors.As(err, &be) {
		t.Fatalf("expected BizError, got %v", err)
	}
	if be.Code != code {
		t.Fatalf("expected code %d, got %d (%s)", code, be.Code, be.Msg)
	}
}
