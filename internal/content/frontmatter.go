package content

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"
)

type frontMatter struct {
	Title    string      `yaml:"title"`
	Eyebrow  string      `yaml:"eyebrow"`
	Summary  string      `yaml:"summary"`
	CTAs     []ctaFM     `yaml:"ctas"`
	Cards    []cardFM    `yaml:"cards"`
	Stats    []statFM    `yaml:"stats"`
	Banner   *bannerFM   `yaml:"banner"`
	Channels []channelFM `yaml:"channels"`
	Details  []detailFM  `yaml:"details"`
	Social   []linkFM    `yaml:"social"`
	Form     *formFM     `yaml:"form"`
	Note     string      `yaml:"note"`
	SEO      seoFM       `yaml:"seo"`
}

type ctaFM struct {
	Label   string `yaml:"label"`
	Icon    string `yaml:"icon"`
	Variant string `yaml:"variant"`
	Target  string `yaml:"target"`
}

type cardFM struct {
	Icon     string   `yaml:"icon"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Text     string   `yaml:"text"`
	Media    string   `yaml:"media"`
	Color    string   `yaml:"color"`
	Tags     []string `yaml:"tags"`
}

type statFM struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type bannerFM struct {
	Icon    string `yaml:"icon"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	CTA     *ctaFM `yaml:"cta"`
}

type channelFM struct {
	Kind     string `yaml:"kind"`
	Icon     string `yaml:"icon"`
	Title    string `yaml:"title"`
	Display  string `yaml:"display"`
	Href     string `yaml:"href"`
	Note     string `yaml:"note"`
	External bool   `yaml:"external"`
}

type detailFM struct {
	Icon  string   `yaml:"icon"`
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines"`
}

type linkFM struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type formFM struct {
	Icon     string    `yaml:"icon"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Fields   []fieldFM `yaml:"fields"`
	Submit   string    `yaml:"submit"`
}

type fieldFM struct {
	Type        string `yaml:"type"`
	Placeholder string `yaml:"placeholder"`
	Rows        int    `yaml:"rows"`
}

type seoFM struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

func (f frontMatter) panel(p site.Page) (Panel, error) {
	panel := Panel{
		Page:    p,
		Title:   strings.TrimSpace(f.Title),
		Eyebrow: strings.TrimSpace(f.Eyebrow),
		Summary: strings.TrimSpace(f.Summary),
		Note:    strings.TrimSpace(f.Note),
		SEO: SEO{
			Title:       strings.TrimSpace(f.SEO.Title),
			Description: strings.TrimSpace(f.SEO.Description),
		},
	}
	for _, c := range f.CTAs {
		cta, err := c.cta()
		if err != nil {
			return Panel{}, err
		}
		panel.CTAs = append(panel.CTAs, cta)
	}
	for _, c := range f.Cards {
		panel.Cards = append(panel.Cards, Card{
			Icon:     c.Icon,
			Title:    strings.TrimSpace(c.Title),
			Subtitle: strings.TrimSpace(c.Subtitle),
			Text:     strings.TrimSpace(c.Text),
			Media:    strings.TrimSpace(c.Media),
			Color:    firstNonEmpty(c.Color, "purple"),
			Tags:     c.Tags,
		})
	}
	for _, s := range f.Stats {
		panel.Stats = append(panel.Stats, Stat{Value: s.Value, Label: s.Label})
	}
	if f.Banner != nil {
		b := &Banner{
			Icon:    f.Banner.Icon,
			Title:   strings.TrimSpace(f.Banner.Title),
			Message: strings.TrimSpace(f.Banner.Message),
		}
		if f.Banner.CTA != nil {
			cta, err := f.Banner.CTA.cta()
			if err != nil {
				return Panel{}, err
			}
			b.CTA = &cta
		}
		panel.Banner = b
	}
	for _, c := range f.Channels {
		panel.Channels = append(panel.Channels, Channel{
			Kind:     strings.TrimSpace(c.Kind),
			Icon:     c.Icon,
			Title:    strings.TrimSpace(c.Title),
			Display:  strings.TrimSpace(c.Display),
			Href:     channelHref(c.Href),
			Note:     strings.TrimSpace(c.Note),
			External: c.External,
		})
	}
	for _, d := range f.Details {
		panel.Details = append(panel.Details, Detail{Icon: d.Icon, Title: strings.TrimSpace(d.Title), Lines: d.Lines})
	}
	for _, l := range f.Social {
		panel.Social = append(panel.Social, Link{Label: l.Label, Href: firstNonEmpty(l.Href, "#")})
	}
	if f.Form != nil {
		form := &Form{
			Icon:     f.Form.Icon,
			Title:    strings.TrimSpace(f.Form.Title),
			Subtitle: strings.TrimSpace(f.Form.Subtitle),
			Submit:   firstNonEmpty(f.Form.Submit, "Send Message"),
		}
		for _, fl := range f.Form.Fields {
			form.Fields = append(form.Fields, Field{
				Type:        firstNonEmpty(fl.Type, "text"),
				Placeholder: fl.Placeholder,
				Rows:        fl.Rows,
			})
		}
		panel.Form = form
	}
	return panel, nil
}

func (c ctaFM) cta() (CTA, error) {
	target, err := site.ParsePage(c.Target)
	if err != nil {
		return CTA{}, fmt.Errorf("cta %q: %w", c.Label, err)
	}
	return CTA{
		Label:   strings.TrimSpace(c.Label),
		Icon:    c.Icon,
		Variant: firstNonEmpty(c.Variant, "primary"),
		Target:  target,
	}, nil
}

var channelSchemes = []string{"tel:", "mailto:", "https://", "http://", "sms:"}

// channelHref trusts known link schemes and replaces anything else with "#".
func channelHref(raw string) template.URL {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	for _, scheme := range channelSchemes {
		if strings.HasPrefix(lower, scheme) {
			return template.URL(raw)
		}
	}
	return "#"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
