package components

import (
	"fmt"
	"time"

	"github.com/renato0307/folio/internal/anim"
	"github.com/renato0307/folio/internal/content"
)

// Element ids. Indexed ids are built with the helpers below.
const (
	IDNavbar      = "navbar"
	IDLogo        = "logo"
	IDThemeToggle = "theme-toggle"
	IDThemeIcon   = "theme-icon"
	IDMenuButton  = "menu-button"
	IDNavPanel    = "nav-panel"

	IDHero        = "hero"
	IDHeroText    = "hero-text"
	IDHeroBadge   = "hero-badge"
	IDHeroTitle   = "hero-title"
	IDHeroTagline = "hero-tagline"
	IDHeroButtons = "hero-buttons"
	IDHeroContact = "hero-contact"
	IDHeroWork    = "hero-work"
	IDHeroSocials = "hero-socials"
	IDHeroImage   = "hero-image"
	IDHeroGlow    = "hero-glow"

	IDAbout      = "about"
	IDAboutImage = "about-image"
	IDAboutGlow  = "about-glow"
	IDAboutText  = "about-text"
	IDAboutStats = "about-stats"

	IDServicesIntro = "services-intro"
	IDProjectsIntro = "projects-intro"
)

func NavLinkID(i int) string     { return fmt.Sprintf("nav-link-%d", i) }
func PanelLinkID(i int) string   { return fmt.Sprintf("panel-link-%d", i) }
func SocialID(i int) string      { return fmt.Sprintf("social-%d", i) }
func ServiceID(i int) string     { return fmt.Sprintf("service-%d", i) }
func ProjectID(i int) string     { return fmt.Sprintf("project-%d", i) }
func ProjectLinkID(i int) string { return fmt.Sprintf("project-link-%d", i) }

// Entrance offsets in terminal cells and lines.
const (
	riseLines   = 1
	slideCells  = -6
	navbarDrop  = -NavbarHeight
	sectionStep = 100 * time.Millisecond
)

func fadeIn(delay time.Duration, trigger anim.Trigger) anim.Descriptor {
	return anim.Descriptor{
		Initial: anim.Visual{}.WithOpacity(0),
		Target:  anim.Visual{}.WithOpacity(1),
		Delay:   delay,
		Trigger: trigger,
		Replay:  anim.Once,
	}
}

func slideIn(d time.Duration, trigger anim.Trigger) anim.Descriptor {
	return anim.Descriptor{
		Initial:  anim.Visual{}.WithOpacity(0).WithX(slideCells),
		Target:   anim.Visual{}.WithOpacity(1).WithX(0),
		Duration: d,
		Trigger:  trigger,
		Replay:   anim.Once,
	}
}

func glow() anim.Descriptor {
	return anim.Descriptor{
		Trigger:  anim.Looping,
		Replay:   anim.Infinite,
		Duration: 10 * time.Second,
		Keyframes: []anim.Visual{
			anim.Visual{}.WithScale(1).WithRotate(0),
			anim.Visual{}.WithScale(1.1).WithRotate(180),
			anim.Visual{}.WithScale(1).WithRotate(0),
		},
	}
}

func button(hover, press float64) []anim.Descriptor {
	return []anim.Descriptor{anim.HoverScale(hover), anim.PressScale(press)}
}

func nudge() anim.Descriptor {
	return anim.Descriptor{Target: anim.Visual{}.WithX(1), Trigger: anim.OnHover}
}

// ThemeIconDescriptor swaps the sun/moon glyph: the old glyph leaves upward,
// then the new one rises into place. Swaps go through Sequencer.Replace so
// the exit plays before the next mount.
func ThemeIconDescriptor() anim.Descriptor {
	exit := anim.Visual{}.WithY(-riseLines).WithOpacity(0)
	return anim.Descriptor{
		Initial:  anim.Visual{}.WithY(riseLines).WithOpacity(0),
		Target:   anim.Visual{}.WithY(0).WithOpacity(1),
		Exit:     &exit,
		Duration: 150 * time.Millisecond,
		Trigger:  anim.OnMount,
		Replay:   anim.EveryMount,
	}
}

// MountNavbar declares the navbar elements.
func MountNavbar(seq *anim.Sequencer, links int) {
	seq.Mount(IDNavbar, anim.Descriptor{
		Initial: anim.Visual{}.WithY(navbarDrop),
		Target:  anim.Visual{}.WithY(0),
		Trigger: anim.OnMount,
	})
	seq.Mount(IDLogo, fadeIn(0, anim.OnMount))
	for i := 0; i < links; i++ {
		seq.Mount(NavLinkID(i), button(1.05, 0.95)...)
		seq.Mount(PanelLinkID(i), nudge(), anim.PressScale(0.95))
	}
	seq.Mount(IDThemeToggle, button(1.1, 0.9)...)
	seq.Mount(IDThemeIcon, ThemeIconDescriptor())
	seq.Mount(IDMenuButton, anim.PressScale(0.95))
}

// MountPage declares every section element of the page.
func MountPage(seq *anim.Sequencer, c *content.Content) {
	seq.Mount(IDHero, fadeIn(0, anim.OnMount))
	seq.Mount(IDHeroText, slideIn(800*time.Millisecond, anim.OnMount))
	seq.Mount(IDHeroBadge, anim.FadeUp(riseLines, 200*time.Millisecond, anim.OnMount))
	seq.Mount(IDHeroTitle, anim.FadeUp(riseLines, 300*time.Millisecond, anim.OnMount))
	seq.Mount(IDHeroTagline, anim.FadeUp(riseLines, 400*time.Millisecond, anim.OnMount))
	seq.Mount(IDHeroButtons, anim.FadeUp(riseLines, 500*time.Millisecond, anim.OnMount))
	seq.Mount(IDHeroContact, button(1.05, 0.95)...)
	seq.Mount(IDHeroWork, button(1.05, 0.95)...)
	seq.Mount(IDHeroSocials, fadeIn(600*time.Millisecond, anim.OnMount))
	for i := range c.Socials {
		seq.Mount(SocialID(i), button(1.1, 0.9)...)
	}
	seq.Mount(IDHeroImage, anim.Descriptor{
		Initial:  anim.Visual{}.WithOpacity(0).WithScale(0.8),
		Target:   anim.Visual{}.WithOpacity(1).WithScale(1),
		Duration: 800 * time.Millisecond,
		Trigger:  anim.OnMount,
	})
	seq.Mount(IDHeroGlow, glow())

	seq.Mount(IDAbout, fadeIn(0, anim.OnViewportEnter))
	seq.Mount(IDAboutImage, slideIn(500*time.Millisecond, anim.OnViewportEnter))
	seq.Mount(IDAboutGlow, glow())
	seq.Mount(IDAboutText, anim.FadeUp(riseLines, 0, anim.OnViewportEnter))
	seq.Mount(IDAboutStats, anim.FadeUp(riseLines, 200*time.Millisecond, anim.OnViewportEnter))

	seq.Mount(IDServicesIntro, anim.FadeUp(riseLines, 0, anim.OnViewportEnter))
	for i, d := range anim.Stagger(sectionStep, len(c.Services), anim.FadeUp(riseLines, 0, anim.OnViewportEnter)) {
		seq.Mount(ServiceID(i), d, anim.HoverLift(-riseLines))
	}

	seq.Mount(IDProjectsIntro, anim.FadeUp(riseLines, 0, anim.OnViewportEnter))
	for i, d := range anim.Stagger(sectionStep, len(c.Projects), anim.FadeUp(riseLines, 0, anim.OnViewportEnter)) {
		seq.Mount(ProjectID(i), d, anim.HoverLift(-riseLines))
		seq.Mount(ProjectLinkID(i), nudge())
	}
}

// combine nests a child visual inside its parent: offsets add, opacity and
// scale multiply.
func combine(parent, child anim.Visual) anim.Visual {
	p, c := parent.Resolved(), child.Resolved()
	return anim.Visual{}.
		WithX(p.X + c.X).
		WithY(p.Y + c.Y).
		WithOpacity(p.Opacity * c.Opacity).
		WithScale(p.Scale * c.Scale).
		WithRotate(p.Rotate + c.Rotate).
		WithHeight(min(p.Height, c.Height))
}
