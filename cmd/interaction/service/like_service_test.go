package service

import (
	"context"
	"testing"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLikeServiceForTest(store LikeStore) *LikeActionService {
	return &LikeActionService{ctx: context.Background(), store: store}
}

func seedCommentWithReply(store *fakeStore) (commentId, replyId int64) {
	store.addComment(&model.Comment{
		CommentId: 100,
		ReelId:    1,
		UserId:    10,
		Content:   "first",
		CreatedAt: "2026-01-01 10:00:00",
		UpdatedAt: "2026-01-01 10:00:00",
	})
	store.addReply(&model.Reply{
		ReplyId:   200,
		CommentId: 100,
		UserId:    11,
		Content:   "first reply",
		CreatedAt: "2026-01-01 10:05:00",
		UpdatedAt: "2026-01-01 10:05:00",
	})
	return 100, 200
}

func TestCommentLikeActionIdempotent(t *testing.T) {
	store := newFakeStore()
	commentId, _ := seedCommentWithReply(store)
	service := newLikeServiceForTest(store)
	ctx := context.Background()

	count, err := service.CommentLikeAction(ctx, &LikeActionRequest{
		UserId: 20, CommentId: commentId, ActionType: constants.ActionLike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 重复like不产生第二个成员
	count, err = service.CommentLikeAction(ctx, &LikeActionRequest{
		UserId: 20, CommentId: commentId, ActionType: constants.ActionLike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = service.CommentLikeAction(ctx, &LikeActionRequest{
		UserId: 20, CommentId: commentId, ActionType: constants.ActionUnlike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// 对不存在的成员unlike是no-op
	count, err = service.CommentLikeAction(ctx, &LikeActionRequest{
		UserId: 20, CommentId: commentId, ActionType: constants.ActionUnlike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCommentLikeActionDistinctUsers(t *testing.T) {
	store := newFakeStore()
	commentId, _ := seedCommentWithReply(store)
	service := newLikeServiceForTest(store)
	ctx := context.Background()

	for _, userId := range []int64{21, 22, 23} {
		_, err := service.CommentLikeAction(ctx, &LikeActionRequest{
			UserId: userId, CommentId: commentId, ActionType: constants.ActionLike,
		})
		require.NoError(t, err)
	}
	count, err := service.CommentLikeAction(ctx, &LikeActionRequest{
		UserId: 21, CommentId: commentId, ActionType: constants.ActionLike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCommentLikeActionNotFound(t *testing.T) {
	store := newFakeStore()
	service := newLikeServiceForTest(store)

	_, err := service.CommentLikeAction(context.Background(), &LikeActionRequest{
		UserId: 20, CommentId: 999, ActionType: constants.ActionLike,
	})
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestCommentLikeActionInvalidAction(t *testing.T) {
	store := newFakeStore()
	commentId, _ := seedCommentWithReply(store)
	service := newLikeServiceForTest(store)

	_, err := service.CommentLikeAction(context.Background(), &LikeActionRequest{
		UserId: 20, CommentId: commentId, ActionType: "toggle",
	})
	require.Error(t, err)
	assert.Equal(t, errno.RequestErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestReplyLikeActionTouchesReplyOnlyOnChange(t *testing.T) {
	store := newFakeStore()
	commentId, replyId := seedCommentWithReply(store)
	service := newLikeServiceForTest(store)
	ctx := context.Background()

	before := store.replies[replyId].UpdatedAt
	count, err := service.ReplyLikeAction(ctx, &LikeActionRequest{
		UserId: 30, CommentId: commentId, ReplyId: replyId, ActionType: constants.ActionLike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	afterFirst := store.replies[replyId].UpdatedAt
	assert.NotEqual(t, before, afterFirst, "first like must bump the reply timestamp")

	// 已是成员 重复like不刷新时间戳
	store.replies[replyId].UpdatedAt = "sentinel"
	count, err = service.ReplyLikeAction(ctx, &LikeActionRequest{
		UserId: 30, CommentId: commentId, ReplyId: replyId, ActionType: constants.ActionLike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, "sentinel", store.replies[replyId].UpdatedAt)

	// 不是成员 unlike同样不刷新
	count, err = service.ReplyLikeAction(ctx, &LikeActionRequest{
		UserId: 31, CommentId: commentId, ReplyId: replyId, ActionType: constants.ActionUnlike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, "sentinel", store.replies[replyId].UpdatedAt)

	// 真正移除成员时刷新
	count, err = service.ReplyLikeAction(ctx, &LikeActionRequest{
		UserId: 30, CommentId: commentId, ReplyId: replyId, ActionType: constants.ActionUnlike,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.NotEqual(t, "sentinel", store.replies[replyId].UpdatedAt)
}

func TestReplyLikeActionDanglingReply(t *testing.T) {
	store := newFakeStore()
	commentId, _ := seedCommentWithReply(store)
	service := newLikeServiceForTest(store)

	// reply存在但挂在别的评论下也算not found
	_, err := service.ReplyLikeAction(context.Background(), &LikeActionRequest{
		UserId: 30, CommentId: commentId, ReplyId: 888, ActionType: constants.ActionLike,
	})
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErr.ErrCode, errno.ConvertErr(err).ErrCode)
}
