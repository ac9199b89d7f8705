package catalog

import (
	"fmt"
	"sort"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// Catalog - read-only справочник шаблонов. Собирается один раз на старте
// процесса и инжектится во все компоненты, которым нужны статические данные.
// Никакого глобального состояния: тесты подставляют свой фиксированный каталог.
type Catalog struct {
	items   map[string]*ItemTemplate
	skills  map[string]*SkillTemplate
	quests  map[string]*QuestTemplate
	recipes map[string]*RecipeTemplate
}

// New собирает каталог и валидирует все определения.
func New(items []ItemTemplate, skills []SkillTemplate, quests []QuestTemplate, recipes []RecipeTemplate) (*Catalog, error) {
	c := &Catalog{
		items:   make(map[string]*ItemTemplate, len(items)),
		skills:  make(map[string]*SkillTemplate, len(skills)),
		quests:  make(map[string]*QuestTemplate, len(quests)),
		recipes: make(map[string]*RecipeTemplate, len(recipes)),
	}

	for i := range items {
		t := &items[i]
		if err := validateItem(t); err != nil {
			return nil, fmt.Errorf("item %q: %w", t.Name, err)
		}
		if _, dup := c.items[t.Name]; dup {
			return nil, fmt.Errorf("duplicate item template: %q", t.Name)
		}
		c.items[t.Name] = t
	}

	for i := range skills {
		t := &skills[i]
		if err := validateSkill(t); err != nil {
			return nil, fmt.Errorf("skill %q: %w", t.Name, err)
		}
		if _, dup := c.skills[t.Name]; dup {
			return nil, fmt.Errorf("duplicate skill template: %q", t.Name)
		}
		c.skills[t.Name] = t
	}

	for i := range quests {
		t := &quests[i]
		if _, dup := c.quests[t.Name]; dup {
			return nil, fmt.Errorf("duplicate quest template: %q", t.Name)
		}
		c.quests[t.Name] = t
	}

	for i := range recipes {
		t := &recipes[i]
		if err := validateRecipe(t); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", t.Name, err)
		}
		if _, dup := c.recipes[t.Name]; dup {
			return nil, fmt.Errorf("duplicate recipe template: %q", t.Name)
		}
		c.recipes[t.Name] = t
	}

	// Перекрестные ссылки проверяем после загрузки всего.
	for _, q := range c.quests {
		if q.Predecessor != "" {
			if _, ok := c.quests[q.Predecessor]; !ok {
				return nil, fmt.Errorf("quest %q: unknown predecessor %q", q.Name, q.Predecessor)
			}
		}
		if q.RewardItem != "" {
			if _, ok := c.items[q.RewardItem]; !ok {
				return nil, fmt.Errorf("quest %q: unknown reward item %q", q.Name, q.RewardItem)
			}
		}
		if q.GatherItem != "" {
			if _, ok := c.items[q.GatherItem]; !ok {
				return nil, fmt.Errorf("quest %q: unknown gather item %q", q.Name, q.GatherItem)
			}
		}
	}
	for _, r := range c.recipes {
		if _, ok := c.items[r.Result]; !ok {
			return nil, fmt.Errorf("recipe %q: unknown result item %q", r.Name, r.Result)
		}
		for _, ing := range r.Ingredients {
			if _, ok := c.items[ing]; !ok {
				return nil, fmt.Errorf("recipe %q: unknown ingredient %q", r.Name, ing)
			}
		}
	}

	return c, nil
}

func validateItem(t *ItemTemplate) error {
	if t.Name == "" {
		return fmt.Errorf("empty name")
	}
	if t.MaxStack < 1 {
		return fmt.Errorf("maxStack must be >= 1, got %d", t.MaxStack)
	}
	// Цена продажи не может превышать цену покупки, иначе вендор = станок для золота.
	if t.SellPrice > t.BuyPrice {
		return fmt.Errorf("sellPrice %d > buyPrice %d", t.SellPrice, t.BuyPrice)
	}
	return nil
}

func validateSkill(t *SkillTemplate) error {
	if t.Name == "" {
		return fmt.Errorf("empty name")
	}
	if t.Category == enums.SkillCategoryUnknown {
		return fmt.Errorf("unknown category")
	}
	if len(t.Levels) == 0 {
		return fmt.Errorf("no levels defined")
	}
	return nil
}

func validateRecipe(t *RecipeTemplate) error {
	if len(t.Ingredients) == 0 || len(t.Ingredients) > RecipeMaxIngredients {
		return fmt.Errorf("ingredient count %d out of range [1..%d]", len(t.Ingredients), RecipeMaxIngredients)
	}
	if t.Result == "" {
		return fmt.Errorf("empty result")
	}
	return nil
}

// --- ПОИСК ---

func (c *Catalog) Item(name string) (*ItemTemplate, bool) {
	t, ok := c.items[name]
	return t, ok
}

func (c *Catalog) Skill(name string) (*SkillTemplate, bool) {
	t, ok := c.skills[name]
	return t, ok
}

func (c *Catalog) Quest(name string) (*QuestTemplate, bool) {
	t, ok := c.quests[name]
	return t, ok
}

func (c *Catalog) Recipe(name string) (*RecipeTemplate, bool) {
	t, ok := c.recipes[name]
	return t, ok
}

// FindRecipe ищет рецепт по набору ингредиентов (порядок не важен).
func (c *Catalog) FindRecipe(ingredients []string) (*RecipeTemplate, bool) {
	want := normalizeIngredients(ingredients)
	for _, r := range c.recipes {
		if equalStrings(want, normalizeIngredients(r.Ingredients)) {
			return r, true
		}
	}
	return nil, false
}

func normalizeIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Skills возвращает все шаблоны навыков (для инициализации списка навыков сущности).
func (c *Catalog) Skills() []*SkillTemplate {
	out := make([]*SkillTemplate, 0, len(c.skills))
	for _, t := range c.skills {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
