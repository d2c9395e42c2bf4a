package recommend

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

const (
	// DefaultCacheTTL is the window during which a prior fetch result is
	// reused unconditionally. It guards against rapid re-invocation from
	// focus events, not correctness.
	DefaultCacheTTL = 5 * time.Minute

	// maxSearchIngredients bounds the ingredient list sent to the primary
	// recommender.
	maxSearchIngredients = 10
)

var (
	// ErrNoUser indicates an operation that requires a user identifier was
	// invoked on a session without one.
	ErrNoUser = errors.New("recommend: no user id")

	// ErrEmptyInventory indicates a user-requested generation was attempted
	// with nothing in the inventory.
	ErrEmptyInventory = errors.New("recommend: inventory is empty")
)

// Session holds the recommendation cache state for one user. It owns the
// recipe list, the timestamp of the last successful fetch and the ingredient
// snapshot taken at that fetch. State is in-memory only; discard the session
// when the user identity changes.
type Session struct {
	userID string
	deps   Deps
	logger zerolog.Logger
	now    func() time.Time
	ttl    time.Duration

	group singleflight.Group

	mu        sync.Mutex
	recipes   []types.RecipeRecommendation
	lastFetch time.Time
	snapshot  []string
	lastErr   string
}

func newSession(userID string, deps Deps) *Session {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	ttl := deps.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Session{
		userID: userID,
		deps:   deps,
		logger: deps.Logger.With().Str("user_id", userID).Logger(),
		now:    now,
		ttl:    ttl,
	}
}

// LoadRecipes returns a recipe list for the session's user, minimizing
// redundant fetches:
//
//   - within the TTL of the last successful fetch the cache is returned as-is;
//   - past the TTL, the current inventory is read and compared (as a sorted
//     set) against the snapshot from the last fetch. If unchanged and the
//     cache is non-empty, the cache is still valid and returned;
//   - an empty inventory clears the cache without touching the network;
//   - otherwise the primary recommender is queried with at most ten
//     ingredients, falling back to the generative path when it finds nothing.
//
// Concurrent calls for the same user share a single in-flight load. On
// collaborator failure the previously cached recipes are returned alongside
// the error, and the message is retained for Err.
func (s *Session) LoadRecipes(ctx context.Context) ([]types.RecipeRecommendation, error) {
	if s.userID == "" {
		return s.Recipes(), nil
	}

	v, err, shared := s.group.Do(s.userID, func() (interface{}, error) {
		return s.load(ctx)
	})
	recipes, _ := v.([]types.RecipeRecommendation)
	if shared && recipes != nil {
		// Coalesced callers must not alias one slice; each gets its own copy.
		out := make([]types.RecipeRecommendation, len(recipes))
		copy(out, recipes)
		recipes = out
	}
	return recipes, err
}

func (s *Session) load(ctx context.Context) ([]types.RecipeRecommendation, error) {
	s.mu.Lock()
	if !s.lastFetch.IsZero() && s.now().Sub(s.lastFetch) < s.ttl {
		cached := s.recipesLocked()
		s.mu.Unlock()
		s.logger.Debug().Msg("recommendation cache fresh, skipping fetch")
		return cached, nil
	}
	s.lastErr = ""
	s.mu.Unlock()

	names, err := s.deps.Inventory.ReadInventoryNames(ctx, s.userID)
	if err != nil {
		return s.fail("load inventory", err)
	}
	current := normalizeIngredients(names)

	s.mu.Lock()
	unchanged := slices.Equal(s.snapshot, current) && len(s.recipes) > 0
	s.mu.Unlock()
	if unchanged {
		s.logger.Debug().Msg("ingredient set unchanged, reusing cached recipes")
		return s.Recipes(), nil
	}

	if len(current) == 0 {
		s.mu.Lock()
		s.recipes = nil
		s.snapshot = current
		s.mu.Unlock()
		s.logger.Debug().Msg("inventory empty, cleared recommendations")
		return nil, nil
	}

	limited := current
	if len(limited) > maxSearchIngredients {
		limited = limited[:maxSearchIngredients]
	}

	result, err := s.deps.Recommender.FetchRecommended(ctx, limited)
	if err != nil {
		return s.fail("fetch recommendations", err)
	}
	if len(result) == 0 {
		s.logger.Debug().Int("ingredients", len(current)).Msg("no recommendations found, falling back to generation")
		result, err = s.deps.Generator.FetchGenerated(ctx, current)
		if err != nil {
			return s.fail("generate recipes", err)
		}
	}

	// The owning scope may have gone away mid-fetch; a canceled context
	// means the result must be discarded rather than applied.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	s.mu.Lock()
	s.recipes = result
	s.snapshot = current
	s.lastFetch = s.now()
	out := s.recipesLocked()
	s.mu.Unlock()

	s.logger.Info().Int("recipes", len(result)).Msg("recommendations refreshed")
	return out, nil
}

// GenerateNewRecipe bypasses the cache and requests freshly generated
// recipes with the full current ingredient set. New recipes are prepended to
// the cached list; the fetch timestamp and ingredient snapshot are left
// untouched so a later automatic refresh is not suppressed. An empty
// inventory is a hard error here since the action was user-requested.
func (s *Session) GenerateNewRecipe(ctx context.Context) ([]types.RecipeRecommendation, error) {
	if s.userID == "" {
		return nil, ErrNoUser
	}

	names, err := s.deps.Inventory.ReadInventoryNames(ctx, s.userID)
	if err != nil {
		_, _ = s.fail("load inventory", err)
		return nil, err
	}
	current := normalizeIngredients(names)
	if len(current) == 0 {
		return nil, ErrEmptyInventory
	}

	generated, err := s.deps.Generator.FetchGenerated(ctx, current)
	if err != nil {
		_, _ = s.fail("generate recipes", err)
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	s.mu.Lock()
	s.recipes = append(append([]types.RecipeRecommendation{}, generated...), s.recipes...)
	s.lastErr = ""
	out := s.recipesLocked()
	s.mu.Unlock()

	s.logger.Info().Int("generated", len(generated)).Msg("generated recipes prepended to cache")
	return out, nil
}

// CompleteRecipe notifies the backend that a recipe was cooked. Each recipe
// ingredient is reported with a used quantity of one. Recipes without an ID
// include their name and data so the backend can persist them first. Failures
// propagate unmodified.
func (s *Session) CompleteRecipe(ctx context.Context, recipe types.RecipeRecommendation) error {
	if s.userID == "" {
		return ErrNoUser
	}

	used := make([]types.IngredientUsed, 0, len(recipe.RecipeData.Ingredients))
	for _, ing := range recipe.RecipeData.Ingredients {
		used = append(used, types.IngredientUsed{Name: ing.Name, QuantityUsed: 1})
	}

	payload := &types.CompleteRecipePayload{
		RecipeID:        recipe.ID,
		UserID:          s.userID,
		IngredientsUsed: used,
	}
	if recipe.ID == "" {
		payload.MenuName = recipe.MenuName
		data := recipe.RecipeData
		payload.RecipeData = &data
	}

	return s.deps.Recorder.RecordCompletion(ctx, payload)
}

// Recipes returns a copy of the currently cached recommendation list.
func (s *Session) Recipes() []types.RecipeRecommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipesLocked()
}

// Err returns the message of the last failed automatic load, or "" if the
// last load succeeded. Cached recipes stay available while Err is set.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) recipesLocked() []types.RecipeRecommendation {
	if s.recipes == nil {
		return nil
	}
	out := make([]types.RecipeRecommendation, len(s.recipes))
	copy(out, s.recipes)
	return out
}

func (s *Session) fail(op string, err error) ([]types.RecipeRecommendation, error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	cached := s.recipesLocked()
	s.mu.Unlock()
	s.logger.Warn().Err(err).Str("op", op).Msg("recommendation load failed, keeping cached recipes")
	return cached, err
}

// normalizeIngredients produces the sorted ingredient-name set used for
// snapshot comparison and fetch requests.
func normalizeIngredients(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return slices.Compact(out)
}
