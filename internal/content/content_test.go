package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageOr(t *testing.T) {
	assert.Equal(t, PlaceholderImage, ImageOr(""))
	assert.Equal(t, PlaceholderImage, ImageOr("  "))
	assert.Equal(t, "/images/eco.png", ImageOr("/images/eco.png"))
}

func TestSkillBars(t *testing.T) {
	assert.Equal(t, []bool{true, true, true, false, false}, Skill{Level: 3}.Bars())
	assert.Equal(t, []bool{false, false, false, false, false}, Skill{}.Bars())
}

func TestSkillLevelsInRange(t *testing.T) {
	for _, c := range SkillCategories {
		for _, s := range c.Skills {
			assert.True(t, s.Level >= 1 && s.Level <= MaxLevel, "%s/%s", c.Name, s.Name)
		}
	}
}

func TestCategorySlug(t *testing.T) {
	assert.Equal(t, "frontend", SkillCategory{Name: "Frontend"}.Slug())
	assert.Equal(t, "dev-tools", SkillCategory{Name: "Dev Tools"}.Slug())
}
