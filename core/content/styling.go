package content

import (
	"fmt"
	"strings"
)

var (
	fontSizes = map[string]string{"small": "14px", "medium": "16px", "large": "18px"}
	paddings  = map[string]string{"small": "8px", "medium": "16px", "large": "24px"}
	radii     = map[string]string{"none": "0px", "small": "4px", "medium": "8px", "large": "12px"}
	shadows   = map[string]string{
		"none":   "none",
		"small":  "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		"medium": "0 4px 6px -1px rgb(0 0 0 / 0.1)",
		"large":  "0 10px 15px -3px rgb(0 0 0 / 0.1)",
	}
)

func lookup(table map[string]string, key string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return table["medium"]
}

// Over returns base with every non-empty field of cs applied on top.
func (cs CardStyling) Over(base CardStyling) CardStyling {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.BackgroundColor, cs.BackgroundColor)
	set(&base.TextColor, cs.TextColor)
	set(&base.FontSize, cs.FontSize)
	set(&base.TextAlign, cs.TextAlign)
	set(&base.Padding, cs.Padding)
	set(&base.BorderRadius, cs.BorderRadius)
	set(&base.Shadow, cs.Shadow)
	set(&base.FontFamily, cs.FontFamily)
	set(&base.CustomCSS, cs.CustomCSS)
	set(&base.Animation, cs.Animation)
	return base
}

// CSS renders the styling as an inline style declaration.
// Empty fields render their default, unknown sizes their medium value.
func (cs CardStyling) CSS() string {
	cs = cs.Over(DefaultCardStyling())

	decls := []string{
		fmt.Sprintf("background-color: %s", cs.BackgroundColor),
		fmt.Sprintf("color: %s", cs.TextColor),
		fmt.Sprintf("font-size: %s", lookup(fontSizes, cs.FontSize)),
		fmt.Sprintf("text-align: %s", cs.TextAlign),
		fmt.Sprintf("padding: %s", lookup(paddings, cs.Padding)),
		fmt.Sprintf("border-radius: %s", lookup(radii, cs.BorderRadius)),
		fmt.Sprintf("box-shadow: %s", lookup(shadows, cs.Shadow)),
		fmt.Sprintf("font-family: %s", cs.FontFamily),
	}
	css := strings.Join(decls, "; ") + ";"
	if custom := strings.TrimSpace(cs.CustomCSS); custom != "" {
		css += " " + custom
	}
	return css
}
