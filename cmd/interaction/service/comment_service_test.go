package service

import (
	"context"
	"strings"
	"testing"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentServiceForTest(store CommentStore) *CommentService {
	return &CommentService{ctx: context.Background(), store: store}
}

func seedReel(store *fakeStore) int64 {
	store.addReel(&model.Reel{
		ReelId:    1,
		UserId:    5,
		Title:     "morning run",
		Status:    constants.ReelStatusActive,
		CreatedAt: "2026-01-01 09:00:00",
		UpdatedAt: "2026-01-01 09:00:00",
	})
	return 1
}

func TestCreateComment(t *testing.T) {
	store := newFakeStore()
	reelId := seedReel(store)
	service := newCommentServiceForTest(store)

	comment, err := service.CreateComment(context.Background(), &CreateCommentRequest{
		ReelId:  reelId,
		UserId:  10,
		Content: "  nice one  ",
	})
	require.NoError(t, err)
	assert.NotZero(t, comment.CommentId)
	assert.Equal(t, "nice one", comment.Content, "content must be trimmed")
	assert.Equal(t, comment.CreatedAt, comment.UpdatedAt)
	assert.Equal(t, int64(1), store.reels[reelId].CommentCount)
}

func TestCreateCommentValidation(t *testing.T) {
	store := newFakeStore()
	reelId := seedReel(store)
	service := newCommentServiceForTest(store)
	ctx := context.Background()

	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace only", "   \t\n "},
		{"too long", strings.Repeat("字", constants.MaxContentLength+1)},
		{"excessive repetition", "spam!" + strings.Repeat("a", 30)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateComment(ctx, &CreateCommentRequest{
				ReelId: reelId, UserId: 10, Content: tc.content,
			})
			require.Error(t, err)
			assert.Equal(t, errno.RequestErr.ErrCode, errno.ConvertErr(err).ErrCode)
		})
	}
}

func TestCreateCommentReelNotFound(t *testing.T) {
	store := newFakeStore()
	service := newCommentServiceForTest(store)

	_, err := service.CreateComment(context.Background(), &CreateCommentRequest{
		ReelId: 404, UserId: 10, Content: "hello",
	})
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestEditComment(t *testing.T) {
	store := newFakeStore()
	seedReel(store)
	commentId, _ := seedCommentWithReply(store)
	service := newCommentServiceForTest(store)

	require.NoError(t, service.EditComment(context.Background(), commentId, "updated text"))
	assert.Equal(t, "updated text", store.comments[commentId].Content)

	err := service.EditComment(context.Background(), commentId, "   ")
	require.Error(t, err)
	assert.Equal(t, errno.RequestErr.ErrCode, errno.ConvertErr(err).ErrCode)
	assert.Equal(t, "updated text", store.comments[commentId].Content, "rejected edit must not change content")
}

func TestDeleteCommentCascade(t *testing.T) {
	store := newFakeStore()
	seedReel(store)
	commentId, replyId := seedCommentWithReply(store)
	ctx := context.Background()

	likeService := newLikeServiceForTest(store)
	_, err := likeService.CommentLikeAction(ctx, &LikeActionRequest{
		UserId: 20, CommentId: commentId, ActionType: constants.ActionLike,
	})
	require.NoError(t, err)
	_, err = likeService.ReplyLikeAction(ctx, &LikeActionRequest{
		UserId: 21, CommentId: commentId, ReplyId: replyId, ActionType: constants.ActionLike,
	})
	require.NoError(t, err)

	service := newCommentServiceForTest(store)
	require.NoError(t, service.DeleteComment(ctx, commentId))

	// 评论 回复 两级点赞集合一并消失
	assert.NotContains(t, store.comments, commentId)
	assert.NotContains(t, store.replies, replyId)
	assert.NotContains(t, store.commentLikes, commentId)
	assert.NotContains(t, store.replyLikes, replyId)

	err = service.DeleteComment(ctx, commentId)
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestGetCommentIncludesReplies(t *testing.T) {
	store := newFakeStore()
	seedReel(store)
	commentId, replyId := seedCommentWithReply(store)
	ctx := context.Background()

	likeService := newLikeServiceForTest(store)
	_, err := likeService.ReplyLikeAction(ctx, &LikeActionRequest{
		UserId: 40, CommentId: commentId, ReplyId: replyId, ActionType: constants.ActionLike,
	})
	require.NoError(t, err)

	service := newCommentServiceForTest(store)
	view, err := service.GetComment(ctx, commentId)
	require.NoError(t, err)
	require.Len(t, view.Replies, 1)
	assert.Equal(t, replyId, view.Replies[0].ReplyId)
	assert.Equal(t, "first reply", view.Replies[0].Content)
	assert.Equal(t, int64(1), view.Replies[0].LikeCount)
	assert.Equal(t, []int64{40}, view.Replies[0].LikeUserIds)
}

func TestGetCommentRepliesKeepInsertionOrder(t *testing.T) {
	store := newFakeStore()
	seedReel(store)
	commentId, _ := seedCommentWithReply(store)
	store.addReply(&model.Reply{
		ReplyId: 201, CommentId: commentId, UserId: 12, Content: "second reply",
		CreatedAt: "2026-01-01 10:06:00", UpdatedAt: "2026-01-01 10:06:00",
	})
	store.addReply(&model.Reply{
		ReplyId: 202, CommentId: commentId, UserId: 13, Content: "third reply",
		CreatedAt: "2026-01-01 10:07:00", UpdatedAt: "2026-01-01 10:07:00",
	})

	service := newCommentServiceForTest(store)
	view, err := service.GetComment(context.Background(), commentId)
	require.NoError(t, err)
	require.Len(t, view.Replies, 3)
	assert.Equal(t, int64(200), view.Replies[0].ReplyId)
	assert.Equal(t, int64(201), view.Replies[1].ReplyId)
	assert.Equal(t, int64(202), view.Replies[2].ReplyId)
}
