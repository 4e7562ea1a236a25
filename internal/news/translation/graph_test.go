// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package translation_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/news/translation"
	"github.com/nuukmedia/polarnews/pkg/pointer"
)

// stubRepository serves a single translation group keyed by canonical id.
type stubRepository struct {
	groups map[int64][]*article.Article

	attached []int64
	linked   [][2]int64
	detached []int64
}

func (stub *stubRepository) GetArticle(_ context.Context, id int64) (*article.Article, error) {
	for _, group := range stub.groups {
		for _, member := range group {
			if member.ID == id {
				return member, nil
			}
		}
	}
	return nil, translation.ErrCanonicalMissing
}

func (stub *stubRepository) ListGroup(_ context.Context, canonicalID int64) ([]*article.Article, error) {
	return stub.groups[canonicalID], nil
}

func (stub *stubRepository) InsertTranslation(_ context.Context, a *article.Article, canonicalID int64) error {
	stub.attached = append(stub.attached, canonicalID)
	a.ID = 1000
	return nil
}

func (stub *stubRepository) LinkTranslation(_ context.Context, articleID, canonicalID int64) error {
	stub.linked = append(stub.linked, [2]int64{articleID, canonicalID})
	return nil
}

func (stub *stubRepository) DetachArticle(_ context.Context, articleID int64) error {
	stub.detached = append(stub.detached, articleID)
	return nil
}

func newTestService(repo translation.Repository) *translation.Service {
	return translation.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testGroup builds the canonical three-language group rooted at id 10.
func testGroup() []*article.Article {
	return []*article.Article{
		{
			ID:           10,
			Language:     article.LanguageDanish,
			CanonicalID:  pointer.To(int64(10)),
			PublishedURL: pointer.To("https://x/samfund/sag/10"),
		},
		{
			ID:           11,
			Language:     article.LanguageGreenlandic,
			CanonicalID:  pointer.To(int64(10)),
			PublishedURL: pointer.To("https://x/samfund/sag/10"),
		},
		{
			ID:             12,
			Language:       article.LanguageEnglish,
			CanonicalID:    pointer.To(int64(10)),
			PublishedURL:   pointer.To("https://x/samfund/sag/10"),
			PublishedURLEn: pointer.To("https://x/en/samfund/case/10"),
		},
	}
}

func TestService_Resolve(t *testing.T) {
	repo := &stubRepository{groups: map[int64][]*article.Article{10: testGroup()}}
	service := newTestService(repo)

	member := testGroup()[1] // the Greenlandic member

	resolved, err := service.Resolve(context.Background(), member)
	require.NoError(t, err)

	require.Len(t, resolved, 3)
	assert.Equal(t, int64(10), resolved[article.LanguageDanish].ID)
	assert.Equal(t, int64(11), resolved[article.LanguageGreenlandic].ID)
	assert.Equal(t, int64(12), resolved[article.LanguageEnglish].ID)
}

func TestService_Resolve_IsolatedArticle(t *testing.T) {
	repo := &stubRepository{groups: map[int64][]*article.Article{}}
	service := newTestService(repo)

	lonely := &article.Article{ID: 77, Language: article.LanguageDanish}

	resolved, err := service.Resolve(context.Background(), lonely)
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Same(t, lonely, resolved[article.LanguageDanish])
}

func TestService_Alternates(t *testing.T) {
	repo := &stubRepository{groups: map[int64][]*article.Article{10: testGroup()}}
	service := newTestService(repo)

	alternates, err := service.Alternates(context.Background(), testGroup()[0])
	require.NoError(t, err)

	require.Len(t, alternates, 3)

	byLang := make(map[article.Language]string, len(alternates))
	for _, alt := range alternates {
		byLang[alt.Language] = alt.URL
	}

	assert.Equal(t, "https://x/samfund/sag/10", byLang[article.LanguageDanish])
	assert.Equal(t, "https://x/samfund/sag/10", byLang[article.LanguageGreenlandic])

	// The English entry prefers the English-locale URL.
	assert.Equal(t, "https://x/en/samfund/case/10", byLang[article.LanguageEnglish])
}

func TestService_Alternates_SkipsURLless(t *testing.T) {
	group := testGroup()
	group[2].PublishedURL = nil
	group[2].PublishedURLEn = nil

	repo := &stubRepository{groups: map[int64][]*article.Article{10: group}}

	alternates, err := newTestService(repo).Alternates(context.Background(), group[0])
	require.NoError(t, err)

	assert.Len(t, alternates, 2)
	for _, alt := range alternates {
		assert.NotEqual(t, article.LanguageEnglish, alt.Language)
	}
}

func TestService_AttachLinkDetach(t *testing.T) {
	repo := &stubRepository{groups: map[int64][]*article.Article{10: testGroup()}}
	service := newTestService(repo)

	fresh := &article.Article{Language: article.LanguageEnglish}
	require.NoError(t, service.Attach(context.Background(), fresh, 10))
	assert.Equal(t, int64(1000), fresh.ID)
	assert.Equal(t, []int64{10}, repo.attached)

	require.NoError(t, service.Link(context.Background(), 55, 10))
	assert.Equal(t, [][2]int64{{55, 10}}, repo.linked)

	require.NoError(t, service.Detach(context.Background(), 11))
	assert.Equal(t, []int64{11}, repo.detached)
}
