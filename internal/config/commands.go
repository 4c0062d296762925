package config

// Commands are the argv launched by keybindings.
type Commands struct {
	Terminal       []string `toml:"terminal"`
	Browser        []string `toml:"browser"`
	FileManager    []string `toml:"file_manager"`
	Dmenu          []string `toml:"dmenu"`
	RofiDrun       []string `toml:"rofi_drun"`
	RofiRun        []string `toml:"rofi_run"`
	Emoji          []string `toml:"emoji"`
	Screenshot     []string `toml:"screenshot"`
	FullScreenshot []string `toml:"full_screenshot"`
	RaiseVolume    []string `toml:"raise_volume"`
	LowerVolume    []string `toml:"lower_volume"`
	ToggleMute     []string `toml:"toggle_mute"`
	RaiseBright    []string `toml:"raise_brightness"`
	LowerBright    []string `toml:"lower_brightness"`
}

// DefaultCommands returns the stock launcher set.
func DefaultCommands() Commands {
	return Commands{
		Terminal:       []string{"kitty"},
		Browser:        []string{"librewolf"},
		FileManager:    []string{"thunar"},
		Dmenu:          []string{"dmenu_run"},
		RofiDrun:       []string{"rofi", "-show", "drun", "-show-icons"},
		RofiRun:        []string{"rofi", "-show", "run", "-show-icons"},
		Emoji:          []string{"rofi", "-show", "emoji"},
		Screenshot:     []string{"sh", "-c", "maim -s -u | xclip -selection clipboard -t image/png"},
		FullScreenshot: []string{"sh", "-c", "maim | xclip -selection clipboard -t image/png"},
		RaiseVolume:    []string{"pamixer", "-i5"},
		LowerVolume:    []string{"pamixer", "-d5"},
		ToggleMute:     []string{"pamixer", "-t"},
		RaiseBright:    []string{"brightnessctl", "s", "5%+"},
		LowerBright:    []string{"brightnessctl", "s", "5%-"},
	}
}

// merge returns c with every non-empty field of o applied on top.
func (c Commands) merge(o Commands) Commands {
	pick := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	pick(&c.Terminal, o.Terminal)
	pick(&c.Browser, o.Browser)
	pick(&c.FileManager, o.FileManager)
	pick(&c.Dmenu, o.Dmenu)
	pick(&c.RofiDrun, o.RofiDrun)
	pick(&c.RofiRun, o.RofiRun)
	pick(&c.Emoji, o.Emoji)
	pick(&c.Screenshot, o.Screenshot)
	pick(&c.FullScreenshot, o.FullScreenshot)
	pick(&c.RaiseVolume, o.RaiseVolume)
	pick(&c.LowerVolume, o.LowerVolume)
	pick(&c.ToggleMute, o.ToggleMute)
	pick(&c.RaiseBright, o.RaiseBright)
	pick(&c.LowerBright, o.LowerBright)
	return c
}
