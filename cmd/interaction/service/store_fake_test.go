package service

import (
	"context"
	"errors"
	"sync"

	"ReelVibe.com/cmd/model"
)

// fakeStore 内存版存储 同时实现LikeStore/CommentStore/ReplyStore
type fakeStore struct {
	mu sync.Mutex

	reels        map[int64]*model.Reel
	comments     map[int64]*model.Comment
	replies      map[int64]*model.Reply
	replyOrder   map[int64][]int64        // commentId -> replyIds 按插入顺序
	commentLikes map[int64]map[int64]bool // commentId -> userId集合
	replyLikes   map[int64]map[int64]bool // replyId -> userId集合
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reels:        make(map[int64]*model.Reel),
		comments:     make(map[int64]*model.Comment),
		replies:      make(map[int64]*model.Reply),
		replyOrder:   make(map[int64][]int64),
		commentLikes: make(map[int64]map[int64]bool),
		replyLikes:   make(map[int64]map[int64]bool),
	}
}

func (f *fakeStore) addReel(reel *model.Reel) {
	f.reels[reel.ReelId] = reel
}

func (f *fakeStore) addComment(comment *model.Comment) {
	f.comments[comment.CommentId] = comment
}

func (f *fakeStore) addReply(reply *model.Reply) {
	f.replies[reply.ReplyId] = reply
	f.replyOrder[reply.CommentId] = append(f.replyOrder[reply.CommentId], reply.ReplyId)
}

func (f *fakeStore) CheckReelExists(ctx context.Context, reelId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.reels[reelId]
	return ok, nil
}

func (f *fakeStore) GetReelInfo(ctx context.Context, reelId int64) (*model.Reel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reel, ok := f.reels[reelId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return reel, nil
}

func (f *fakeStore) CheckCommentExists(ctx context.Context, commentId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.comments[commentId]
	return ok, nil
}

func (f *fakeStore) CheckReplyExists(ctx context.Context, commentId, replyId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reply, ok := f.replies[replyId]
	return ok && reply.CommentId == commentId, nil
}

func (f *fakeStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[comment.CommentId] = comment
	return nil
}

func (f *fakeStore) GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[commentId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return comment, nil
}

func (f *fakeStore) UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[commentId]
	if !ok {
		return errors.New("record not found")
	}
	comment.Content = content
	comment.UpdatedAt = updatedAt
	return nil
}

func (f *fakeStore) DeleteCommentCascade(ctx context.Context, commentId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, replyId := range f.replyOrder[commentId] {
		delete(f.replies, replyId)
		delete(f.replyLikes, replyId)
	}
	delete(f.replyOrder, commentId)
	delete(f.commentLikes, commentId)
	delete(f.comments, commentId)
	return nil
}

func (f *fakeStore) GetReelCommentListByPart(ctx context.Context, reelId, pageNum, pageSize int64) ([]*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]*model.Comment, 0)
	for _, comment := range f.comments {
		if comment.ReelId == reelId {
			list = append(list, comment)
		}
	}
	return list, nil
}

func (f *fakeStore) GetReelCommentCount(ctx context.Context, reelId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, comment := range f.comments {
		if comment.ReelId == reelId {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) CreateReply(ctx context.Context, reply *model.Reply) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[reply.ReplyId] = reply
	f.replyOrder[reply.CommentId] = append(f.replyOrder[reply.CommentId], reply.ReplyId)
	return nil
}

func (f *fakeStore) GetReplyInfo(ctx context.Context, commentId, replyId int64) (*model.Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reply, ok := f.replies[replyId]
	if !ok || reply.CommentId != commentId {
		return nil, errors.New("record not found")
	}
	return reply, nil
}

func (f *fakeStore) UpdateReplyContent(ctx context.Context, commentId, replyId int64, content, updatedAt string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	reply, ok := f.replies[replyId]
	if !ok || reply.CommentId != commentId {
		return errors.New("record not found")
	}
	reply.Content = content
	reply.UpdatedAt = updatedAt
	return nil
}

func (f *fakeStore) TouchReply(ctx context.Context, commentId, replyId int64, updatedAt string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	reply, ok := f.replies[replyId]
	if !ok || reply.CommentId != commentId {
		return errors.New("record not found")
	}
	reply.UpdatedAt = updatedAt
	return nil
}

func (f *fakeStore) GetReplyListByPart(ctx context.Context, commentId, pageNum, pageSize int64) ([]*model.Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]*model.Reply, 0)
	for _, replyId := range f.replyOrder[commentId] {
		if reply, ok := f.replies[replyId]; ok {
			list = append(list, reply)
		}
	}
	return list, nil
}

func (f *fakeStore) GetReplyIdsOfComment(ctx context.Context, commentId int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0)
	for _, replyId := range f.replyOrder[commentId] {
		if _, ok := f.replies[replyId]; ok {
			ids = append(ids, replyId)
		}
	}
	return ids, nil
}

func (f *fakeStore) AddCommentLike(ctx context.Context, commentId, userId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.commentLikes[commentId]
	if !ok {
		set = make(map[int64]bool)
		f.commentLikes[commentId] = set
	}
	if set[userId] {
		return false, nil
	}
	set[userId] = true
	return true, nil
}

func (f *fakeStore) RemoveCommentLike(ctx context.Context, commentId, userId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.commentLikes[commentId]
	if !ok || !set[userId] {
		return false, nil
	}
	delete(set, userId)
	return true, nil
}

func (f *fakeStore) AddReplyLike(ctx context.Context, commentId, replyId, userId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.replyLikes[replyId]
	if !ok {
		set = make(map[int64]bool)
		f.replyLikes[replyId] = set
	}
	if set[userId] {
		return false, nil
	}
	set[userId] = true
	return true, nil
}

func (f *fakeStore) RemoveReplyLike(ctx context.Context, replyId, userId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.replyLikes[replyId]
	if !ok || !set[userId] {
		return false, nil
	}
	delete(set, userId)
	return true, nil
}

func (f *fakeStore) GetCommentLikeCount(ctx context.Context, commentId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.commentLikes[commentId])), nil
}

func (f *fakeStore) GetCommentLikeList(ctx context.Context, commentId int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.commentLikes[commentId]))
	for userId := range f.commentLikes[commentId] {
		ids = append(ids, userId)
	}
	return ids, nil
}

func (f *fakeStore) GetReplyLikeCount(ctx context.Context, replyId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.replyLikes[replyId])), nil
}

func (f *fakeStore) GetReplyLikeList(ctx context.Context, replyId int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.replyLikes[replyId]))
	for userId := range f.replyLikes[replyId] {
		ids = append(ids, userId)
	}
	return ids, nil
}

func (f *fakeStore) IncrReelCommentCount(ctx context.Context, reelId, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reel, ok := f.reels[reelId]; ok {
		reel.CommentCount += delta
	}
	return nil
}
