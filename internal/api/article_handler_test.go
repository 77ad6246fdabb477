package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/mocks"
)

func validArticlePayload() map[string]any {
	return map[string]any{
		"title":       "A Study in Scarlet",
		"description": "The first Holmes story.",
		"article":     "It was in the year 1878...",
		"category_id": float64(1),
	}
}

func TestArticleCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid create stores slug, author and category", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		categories.Seed("Fiction", 1)
		articles := mocks.NewMockArticleStore()
		handler := NewArticleHandler(articles, categories)

		recorder := httptest.NewRecorder()
		handler.Create(recorder, newRequest(t, "POST", "/articles", "", validArticlePayload()))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		require.Len(t, articles.Articles, 1)
		assert.Equal(t, "a-study-in-scarlet", articles.Articles[0].Slug)
		assert.Equal(t, int64(1), articles.Articles[0].CategoryID)
		assert.Equal(t, int64(1), articles.Articles[0].AuthorID)
	})

	t.Run("category ID as string is converted", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		categories.Seed("Fiction", 1)
		articles := mocks.NewMockArticleStore()
		handler := NewArticleHandler(articles, categories)

		payload := validArticlePayload()
		payload["category_id"] = "1"

		recorder := httptest.NewRecorder()
		handler.Create(recorder, newRequest(t, "POST", "/articles", "", payload))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		require.Len(t, articles.Articles, 1)
		assert.Equal(t, int64(1), articles.Articles[0].CategoryID)
	})

	t.Run("unknown category inserts nothing", func(t *testing.T) {
		t.Parallel()

		articles := mocks.NewMockArticleStore()
		handler := NewArticleHandler(articles, mocks.NewMockCategoryStore())

		recorder := httptest.NewRecorder()
		handler.Create(recorder, newRequest(t, "POST", "/articles", "", validArticlePayload()))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{"The article category doesn't exist."}, decodeErrors(t, recorder))
		assert.Empty(t, articles.Articles)
	})

	t.Run("soft-deleted category does not count", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		seeded := categories.Seed("Fiction", 1)
		require.NoError(t, categories.SoftDelete(context.Background(), domain.NumericIdentifier(seeded.ID)))
		handler := NewArticleHandler(mocks.NewMockArticleStore(), categories)

		recorder := httptest.NewRecorder()
		handler.Create(recorder, newRequest(t, "POST", "/articles", "", validArticlePayload()))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{"The article category doesn't exist."}, decodeErrors(t, recorder))
	})

	t.Run("duplicate title and missing category accumulate in order", func(t *testing.T) {
		t.Parallel()

		articles := mocks.NewMockArticleStore()
		articles.Seed("A Study in Scarlet", 1, 1)
		handler := NewArticleHandler(articles, mocks.NewMockCategoryStore())

		recorder := httptest.NewRecorder()
		handler.Create(recorder, newRequest(t, "POST", "/articles", "", validArticlePayload()))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{
			"The article category doesn't exist.",
			"The article title already exists.",
		}, decodeErrors(t, recorder))
	})

	t.Run("field validation failures skip the async checks", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		categories.ExistsByIDFn = func(ctx context.Context, id int64) (bool, error) {
			t.Fatal("category check should not run when validation fails")
			return false, nil
		}
		handler := NewArticleHandler(mocks.NewMockArticleStore(), categories)

		payload := validArticlePayload()
		payload["title"] = "1984"

		recorder := httptest.NewRecorder()
		handler.Create(recorder, newRequest(t, "POST", "/articles", "", payload))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{"The title can't be a number."}, decodeErrors(t, recorder))
	})
}

func TestArticleGet(t *testing.T) {
	t.Parallel()

	articles := mocks.NewMockArticleStore()
	articles.Seed("A Study in Scarlet", 1, 1)
	handler := NewArticleHandler(articles, mocks.NewMockCategoryStore())

	t.Run("by slug", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		handler.Get(recorder, newRequest(t, "GET", "/articles/a-study-in-scarlet", "a-study-in-scarlet", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		data := decodeData[domain.Article](t, recorder)
		require.Len(t, data, 1)
		assert.Equal(t, "A Study in Scarlet", data[0].Title)
	})

	t.Run("slug length uses the title limit", func(t *testing.T) {
		t.Parallel()

		// 100 characters, fine for articles though far over the
		// 50-character category limit.
		long := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

		recorder := httptest.NewRecorder()
		handler.Get(recorder, newRequest(t, "GET", "/articles/"+long, long, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())
	})
}

func TestArticleUpdate(t *testing.T) {
	t.Parallel()

	t.Run("article can keep its own title", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		categories.Seed("Fiction", 1)
		articles := mocks.NewMockArticleStore()
		articles.Seed("A Study in Scarlet", 1, 1)
		handler := NewArticleHandler(articles, categories)

		recorder := httptest.NewRecorder()
		handler.Update(recorder, newRequest(t, "PATCH", "/articles/1", "1", validArticlePayload()))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("renaming onto another live title fails", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		categories.Seed("Fiction", 1)
		articles := mocks.NewMockArticleStore()
		articles.Seed("A Study in Scarlet", 1, 1)
		articles.Seed("The Sign of Four", 1, 1)
		handler := NewArticleHandler(articles, categories)

		recorder := httptest.NewRecorder()
		handler.Update(recorder, newRequest(t, "PATCH", "/articles/2", "2", validArticlePayload()))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{"The article title already exists."}, decodeErrors(t, recorder))
	})

	t.Run("missing target, category and duplicate accumulate in order", func(t *testing.T) {
		t.Parallel()

		articles := mocks.NewMockArticleStore()
		articles.Seed("A Study in Scarlet", 1, 1)
		handler := NewArticleHandler(articles, mocks.NewMockCategoryStore())

		recorder := httptest.NewRecorder()
		handler.Update(recorder, newRequest(t, "PATCH", "/articles/99", "99", validArticlePayload()))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{
			"The ID or slug doesn't exist.",
			"The article category doesn't exist.",
			"The article title already exists.",
		}, decodeErrors(t, recorder))
	})

	t.Run("full replacement rewrites every field", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		categories.Seed("Fiction", 1)
		categories.Seed("Mystery", 1)
		articles := mocks.NewMockArticleStore()
		articles.Seed("A Study in Scarlet", 1, 1)
		handler := NewArticleHandler(articles, categories)

		recorder := httptest.NewRecorder()
		handler.Update(recorder, newRequest(t, "PATCH", "/articles/a-study-in-scarlet", "a-study-in-scarlet", map[string]any{
			"title":       "The Hound of the Baskervilles",
			"description": "Holmes on the moor.",
			"article":     "Mr. Sherlock Holmes, who was usually very late...",
			"category_id": float64(2),
		}))

		assert.Equal(t, http.StatusOK, recorder.Code)
		got := articles.Articles[0]
		assert.Equal(t, "The Hound of the Baskervilles", got.Title)
		assert.Equal(t, "the-hound-of-the-baskervilles", got.Slug)
		assert.Equal(t, "Holmes on the moor.", got.Description)
		assert.Equal(t, int64(2), got.CategoryID)
	})
}

func TestArticleDelete(t *testing.T) {
	t.Parallel()

	t.Run("delete then repeat delete", func(t *testing.T) {
		t.Parallel()

		articles := mocks.NewMockArticleStore()
		articles.Seed("A Study in Scarlet", 1, 1)
		handler := NewArticleHandler(articles, mocks.NewMockCategoryStore())

		recorder := httptest.NewRecorder()
		handler.Delete(recorder, newRequest(t, "DELETE", "/articles/a-study-in-scarlet", "a-study-in-scarlet", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, articles.Articles[0].IsDeleted)

		recorder = httptest.NewRecorder()
		handler.Delete(recorder, newRequest(t, "DELETE", "/articles/a-study-in-scarlet", "a-study-in-scarlet", nil))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{"The ID or slug doesn't exist."}, decodeErrors(t, recorder))
	})

	t.Run("deleted title can be reused", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		categories.Seed("Fiction", 1)
		articles := mocks.NewMockArticleStore()
		seeded := articles.Seed("A Study in Scarlet", 1, 1)
		require.NoError(t, articles.SoftDelete(context.Background(), domain.NumericIdentifier(seeded.ID)))
		handler := NewArticleHandler(articles, categories)

		recorder := httptest.NewRecorder()
		handler.Create(recorder, newRequest(t, "POST", "/articles", "", validArticlePayload()))

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}
