package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// contentFile - формат JSON-файла с контентом. Все секции опциональны,
// файл ДОПОЛНЯЕТ встроенный набор (совпадение имен - ошибка, а не оверрайд:
// сохранения ссылаются на шаблоны по имени, тихая подмена опасна).
type contentFile struct {
	Items   []ItemTemplate   `json:"items"`
	Skills  []SkillTemplate  `json:"skills"`
	Quests  []QuestTemplate  `json:"quests"`
	Recipes []RecipeTemplate `json:"recipes"`
}

// LoadFile собирает каталог из встроенного набора плюс контент из path.
// Пустой path = только встроенный набор.
func LoadFile(path string) (*Catalog, error) {
	items := defaultItems()
	skills := defaultSkills()
	quests := defaultQuests()
	recipes := defaultRecipes()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content file: %w", err)
		}

		var extra contentFile
		if err := json.Unmarshal(data, &extra); err != nil {
			return nil, fmt.Errorf("parse content file %s: %w", path, err)
		}

		items = append(items, extra.Items...)
		skills = append(skills, extra.Skills...)
		quests = append(quests, extra.Quests...)
		recipes = append(recipes, extra.Recipes...)

		logger.Log.WithField("path", path).Infof("Loaded extra content: %d items, %d skills, %d quests, %d recipes",
			len(extra.Items), len(extra.Skills), len(extra.Quests), len(extra.Recipes))
	}

	return New(items, skills, quests, recipes)
}
