package domain

import "fmt"

// BaseRequirements is the constraint block shared by every style prompt.
const BaseRequirements = `
CRITICAL IMAGE SPECIFICATIONS (MUST FOLLOW):
- Generate EXACTLY 56 pixels × 56 pixels (56px × 56px) - THIS IS MANDATORY
- The image MUST be 56x56px, not larger. This is a small icon size.
- Design specifically for tiny 56x56px display - use bold, clear shapes
- Icon-style illustration optimized for small size (not photo-realistic)
- Centered composition with clear focus
- Business/enterprise aesthetic suitable for kintone app icons
- Maximum contrast and extremely clear visibility at 56x56px
- Simple, bold design that remains recognizable at tiny size
- No fine details that would be lost at 56x56px
- No text or labels in the image
- Design MUST work perfectly at exactly 56 pixels × 56 pixels`

// Style is one visual treatment requested for every generation.
type Style struct {
	Name       string
	Directives string
}

// Prompt builds the full prompt text for the given description.
func (s Style) Prompt(description string) string {
	return fmt.Sprintf("Generate a 56px × 56px icon for: %s\n\n%s\n\n%s", description, BaseRequirements, s.Directives)
}

const (
	Style3D       = "3D立体感"
	StyleFlat     = "フラット"
	StyleSimple   = "シンプル"
	StyleColorful = "カラフル"
)

// Styles is the style catalog. Order is preserved in responses.
var Styles = []Style{
	{
		Name: Style3D,
		Directives: `Style: 3D立体感のあるデザイン (optimized for 56x56px)
- Simple 3D rendering with clear depth (not too complex for small size)
- Bold glossy or metallic surface effects
- Strong lighting and highlights visible at tiny size
- Modern and polished appearance with clear shapes`,
	},
	{
		Name: StyleFlat,
		Directives: `Style: フラットデザイン (optimized for 56x56px)
- Pure flat design with bold, solid colors
- Strong contrast between colors
- Large, simple geometric shapes (no tiny details)
- Minimalist and extremely clear at small size
- Material design inspired with bold elements`,
	},
	{
		Name: StyleSimple,
		Directives: `Style: ごくシンプルなアイコン (optimized for 56x56px)
- Bold minimal line art or single solid color
- Maximum simplicity with 1-2 high-contrast colors
- Thick, clear outlines or bold silhouettes
- Only the most essential elements
- Perfect legibility at tiny 56x56px size`,
	},
	{
		Name: StyleColorful,
		Directives: `Style: カラフルで多彩 (optimized for 56x56px)
- Vibrant bold colors (3-5 distinct colors, clearly visible)
- Strong gradients with clear color blocks
- Expressive but not overly detailed for small size
- Eye-catching with bold color contrast
- Playful yet professional with clear shapes`,
	},
}

// ExampleDescriptions are offered to users as starting points.
var ExampleDescriptions = []string{
	"顧客管理のアイコン",
	"プロジェクト管理のアイコン",
	"営業日報のアイコン",
	"勤怠管理のアイコン",
}
