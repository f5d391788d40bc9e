package service

import (
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/mongo"
	"Kiosque/internal/repository"
	"context"
	"time"
)

// 内存版仓库实现，供各服务测试复用

type publishedEvent struct {
	eventType string
	userId    uint64
	targetId  uint64
}

type fakeProducer struct {
	events []publishedEvent
}

func (f *fakeProducer) Publish(_ context.Context, eventType string, userId, targetId uint64) {
	f.events = append(f.events, publishedEvent{eventType: eventType, userId: userId, targetId: targetId})
}

func (f *fakeProducer) Close() error {
	return nil
}

type fakeArticleRepo struct {
	articles      map[uint64]*model.Article
	totalLikes    int64
	totalComments int64
}

func newFakeArticleRepo(articles ...*model.Article) *fakeArticleRepo {
	repo := &fakeArticleRepo{articles: make(map[uint64]*model.Article)}
	for _, article := range articles {
		repo.articles[article.ID] = article
	}
	return repo
}

func (f *fakeArticleRepo) CreateArticle(_ context.Context, article *model.Article) error {
	if article.ID == 0 {
		article.ID = uint64(len(f.articles) + 1)
	}
	article.CreatedAt = time.Now()
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) GetArticle(_ context.Context, id uint64) (*model.Article, error) {
	return f.articles[id], nil
}

func (f *fakeArticleRepo) GetArticleByIds(_ context.Context, ids []uint64) ([]*model.Article, error) {
	var result []*model.Article
	for _, id := range ids {
		if article, ok := f.articles[id]; ok {
			result = append(result, article)
		}
	}
	return result, nil
}

func (f *fakeArticleRepo) ListArticles(_ context.Context, _ repository.ArticleFilter, _ int) ([]*model.Article, error) {
	var result []*model.Article
	for _, article := range f.articles {
		result = append(result, article)
	}
	return result, nil
}

func (f *fakeArticleRepo) DeleteArticle(_ context.Context, id uint64) error {
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) ApplyCounterDeltas(_ context.Context, id uint64, dLikes, dDislikes int) error {
	if article, ok := f.articles[id]; ok {
		article.LikesCount += dLikes
		article.DislikesCount += dDislikes
	}
	return nil
}

func (f *fakeArticleRepo) UpdateViewsCount(_ context.Context, id uint64, views int64) error {
	if article, ok := f.articles[id]; ok {
		article.ViewsCount = int(views)
	}
	return nil
}

func (f *fakeArticleRepo) CountArticles(_ context.Context) (int64, error) {
	return int64(len(f.articles)), nil
}

func (f *fakeArticleRepo) SumLikes(_ context.Context) (int64, error) {
	return f.totalLikes, nil
}

func (f *fakeArticleRepo) SumComments(_ context.Context) (int64, error) {
	return f.totalComments, nil
}

type reactionKey struct {
	userId    uint64
	articleId uint64
}

// fakeReactionRepo 复用 ResolveVote 状态机，计数增量同步到 fakeArticleRepo
type fakeReactionRepo struct {
	reactions map[reactionKey]*model.ArticleReaction
	articles  *fakeArticleRepo
}

func newFakeReactionRepo(articles *fakeArticleRepo) *fakeReactionRepo {
	return &fakeReactionRepo{
		reactions: make(map[reactionKey]*model.ArticleReaction),
		articles:  articles,
	}
}

func (f *fakeReactionRepo) ApplyVote(ctx context.Context, userId, articleId uint64, requested int8) (*model.VoteResult, error) {
	key := reactionKey{userId: userId, articleId: articleId}
	reaction := f.reactions[key]
	prev := model.VoteNone
	if reaction != nil {
		prev = reaction.Action
	}

	next, dLikes, dDislikes := model.ResolveVote(prev, requested)
	if reaction == nil {
		reaction = &model.ArticleReaction{UserID: userId, ArticleID: articleId}
		f.reactions[key] = reaction
	}
	reaction.Action = next
	reaction.UpdatedAt = time.Now()

	if err := f.articles.ApplyCounterDeltas(ctx, articleId, dLikes, dDislikes); err != nil {
		return nil, err
	}
	return &model.VoteResult{Action: next, DeltaLikes: dLikes, DeltaDislikes: dDislikes}, nil
}

func (f *fakeReactionRepo) ToggleFavorite(_ context.Context, userId, articleId uint64) (bool, error) {
	key := reactionKey{userId: userId, articleId: articleId}
	reaction := f.reactions[key]
	if reaction == nil {
		reaction = &model.ArticleReaction{UserID: userId, ArticleID: articleId}
		f.reactions[key] = reaction
	}
	reaction.Favorite = !reaction.Favorite
	reaction.UpdatedAt = time.Now()
	return reaction.Favorite, nil
}

func (f *fakeReactionRepo) GetReaction(_ context.Context, userId, articleId uint64) (*model.ArticleReaction, error) {
	return f.reactions[reactionKey{userId: userId, articleId: articleId}], nil
}

func (f *fakeReactionRepo) ListFavorites(_ context.Context, userId uint64) ([]uint64, error) {
	type entry struct {
		articleId uint64
		updatedAt time.Time
	}
	var entries []entry
	for key, reaction := range f.reactions {
		if key.userId == userId && reaction.Favorite {
			entries = append(entries, entry{articleId: key.articleId, updatedAt: reaction.UpdatedAt})
		}
	}
	// 收藏时间倒序
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[j].updatedAt.After(entries[i].updatedAt) {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
	}
	ids := make([]uint64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.articleId)
	}
	return ids, nil
}

type fakeUserRepo struct {
	users  map[uint64]*model.User
	roles  map[uint64][]*model.Role
	dupErr error
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users: make(map[uint64]*model.User),
		roles: make(map[uint64][]*model.Role),
	}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return f.dupErr
		}
	}
	if user.ID == 0 {
		user.ID = uint64(len(f.users) + 1)
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uint64, at time.Time) error {
	if user, ok := f.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountActiveUsers(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.LastLogin != nil && user.LastLogin.After(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) GetUserRoles(_ context.Context, userId uint64) ([]*model.Role, error) {
	return f.roles[userId], nil
}

func (f *fakeUserRepo) GetRoleByName(_ context.Context, name string) (*model.Role, error) {
	for _, roles := range f.roles {
		for _, role := range roles {
			if role.Name == name {
				return role, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) AddRoleToUser(_ context.Context, userId uint64, roleId uint64) error {
	f.roles[userId] = append(f.roles[userId], &model.Role{ID: roleId})
	return nil
}

type fakeCommentRepo struct {
	comments []*model.Comment
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	comment.ID = uint64(len(f.comments) + 1)
	comment.CreatedAt = time.Now()
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) ListByArticle(_ context.Context, articleId uint64, limit int) ([]*model.Comment, error) {
	var result []*model.Comment
	for i := len(f.comments) - 1; i >= 0 && len(result) < limit; i-- {
		if f.comments[i].ArticleID == articleId {
			result = append(result, f.comments[i])
		}
	}
	return result, nil
}

func (f *fakeCommentRepo) CountComments(_ context.Context) (int64, error) {
	return int64(len(f.comments)), nil
}

type fakeCategoryRepo struct {
	categories map[uint64]*model.Category
	dupErr     error
}

func newFakeCategoryRepo(categories ...*model.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uint64]*model.Category)}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, category *model.Category) error {
	for _, existing := range f.categories {
		if existing.Name == category.Name {
			return f.dupErr
		}
	}
	if category.ID == 0 {
		category.ID = uint64(len(f.categories) + 1)
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetCategory(_ context.Context, id uint64) (*model.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) ListCategories(_ context.Context) ([]*model.Category, error) {
	var result []*model.Category
	for _, category := range f.categories {
		result = append(result, category)
	}
	return result, nil
}

func (f *fakeCategoryRepo) DeleteCategory(_ context.Context, id uint64) error {
	delete(f.categories, id)
	return nil
}

type fakeListingRepo struct {
	listings map[uint64]*model.Listing
}

func newFakeListingRepo(listings ...*model.Listing) *fakeListingRepo {
	repo := &fakeListingRepo{listings: make(map[uint64]*model.Listing)}
	for _, listing := range listings {
		repo.listings[listing.ID] = listing
	}
	return repo
}

func (f *fakeListingRepo) CreateListing(_ context.Context, listing *model.Listing) error {
	if listing.ID == 0 {
		listing.ID = uint64(len(f.listings) + 1)
	}
	listing.CreatedAt = time.Now()
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) GetListing(_ context.Context, id uint64) (*model.Listing, error) {
	return f.listings[id], nil
}

func (f *fakeListingRepo) ListListings(_ context.Context, categoryId uint64, limit int) ([]*model.Listing, error) {
	var result []*model.Listing
	for _, listing := range f.listings {
		if categoryId != 0 && listing.CategoryID != categoryId {
			continue
		}
		if len(result) >= limit {
			break
		}
		result = append(result, listing)
	}
	return result, nil
}

func (f *fakeListingRepo) DeleteListing(_ context.Context, id uint64) error {
	delete(f.listings, id)
	return nil
}

func (f *fakeListingRepo) CountListings(_ context.Context) (int64, error) {
	return int64(len(f.listings)), nil
}

type fakePollRepo struct {
	polls  map[uint64]*model.Poll
	nextID uint64
}

func newFakePollRepo() *fakePollRepo {
	return &fakePollRepo{polls: make(map[uint64]*model.Poll), nextID: 1}
}

func (f *fakePollRepo) CreatePoll(_ context.Context, poll *model.Poll) error {
	poll.ID = f.nextID
	f.nextID++
	poll.CreatedAt = time.Now()
	for i := range poll.Options {
		poll.Options[i].ID = poll.ID*100 + uint64(i)
		poll.Options[i].PollID = poll.ID
	}
	f.polls[poll.ID] = poll
	return nil
}

func (f *fakePollRepo) GetPoll(_ context.Context, id uint64) (*model.Poll, error) {
	return f.polls[id], nil
}

func (f *fakePollRepo) ListPolls(_ context.Context, limit int) ([]*model.Poll, error) {
	var result []*model.Poll
	for _, poll := range f.polls {
		if len(result) >= limit {
			break
		}
		result = append(result, poll)
	}
	return result, nil
}

func (f *fakePollRepo) VoteOption(_ context.Context, pollId, optionId uint64) (bool, error) {
	poll, ok := f.polls[pollId]
	if !ok {
		return false, nil
	}
	for i := range poll.Options {
		if poll.Options[i].ID == optionId {
			poll.Options[i].Votes++
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePollRepo) DeletePoll(_ context.Context, id uint64) error {
	delete(f.polls, id)
	return nil
}

func (f *fakePollRepo) CountPolls(_ context.Context) (int64, error) {
	return int64(len(f.polls)), nil
}

type fakeStatsRepo struct {
	stats []*model.DailyStat
}

func (f *fakeStatsRepo) UpsertDailyStat(_ context.Context, statType, statDate string, count int64) error {
	for _, stat := range f.stats {
		if stat.StatType == statType && stat.StatDate == statDate {
			stat.Count = count
			return nil
		}
	}
	f.stats = append(f.stats, &model.DailyStat{StatType: statType, StatDate: statDate, Count: count})
	return nil
}

func (f *fakeStatsRepo) GetDailyStats(_ context.Context, statType string, from, to time.Time) ([]*model.DailyStat, error) {
	fromDay := from.Format(time.DateOnly)
	toDay := to.Format(time.DateOnly)
	var result []*model.DailyStat
	for _, stat := range f.stats {
		if stat.StatType == statType && stat.StatDate >= fromDay && stat.StatDate <= toDay {
			result = append(result, stat)
		}
	}
	return result, nil
}

type fakeEventRepo struct {
	events    []*mongo.EventModel
	lastType  string
	lastLimit int64
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *mongo.EventModel) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventRepo) GetRecentEvents(_ context.Context, eventType string, limit int64) ([]*mongo.EventModel, error) {
	f.lastType = eventType
	f.lastLimit = limit
	var result []*mongo.EventModel
	for i := len(f.events) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		if eventType == "" || f.events[i].Type == eventType {
			result = append(result, f.events[i])
		}
	}
	return result, nil
}

func (f *fakeEventRepo) CountByDay(_ context.Context, eventType string, since time.Time) (map[string]int64, error) {
	result := make(map[string]int64)
	for _, event := range f.events {
		if event.Type == eventType && !event.OccurredAt.Before(since) {
			result[event.OccurredAt.Format(time.DateOnly)]++
		}
	}
	return result, nil
}
