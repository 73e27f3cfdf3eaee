package scene

// defaultYAML is the scene shown when no scene file is configured.
const defaultYAML = `
windows:
  - id: browser
    x: 80
    y: 60
    width: 640
    height: 420
    title: Landing page
    style: Safari
    layouts:
      - name: mobile
        breakpoint: 0
        height: 900
        label: Mobile layout
        color: {r: 255, g: 140, b: 0, a: 255}
      - name: tablet
        breakpoint: 400
        height: 700
        label: Tablet layout
        color: {r: 100, g: 149, b: 237, a: 255}
      - name: desktop
        breakpoint: 800
        height: 600
        label: Desktop layout
        color: {r: 60, g: 179, b: 113, a: 255}
  - id: finder
    x: 820
    y: 120
    width: 420
    height: 300
    minWidth: 240
    minHeight: 160
    title: Documents
    style: macOS
    appearance: false
    scrollable: false
    layouts:
      - name: list
        label: File list
        color: {r: 230, g: 230, b: 235, a: 255}
  - id: empty
    x: 820
    y: 520
    width: 360
    height: 240
    style: Chrome
buttons:
  - id: primary
    x: 80
    y: 540
    text: "Clicks: "
  - id: secondary
    x: 240
    y: 540
    text: "Secondary "
    buttonType: Secondary
    buttonSize: L
  - id: wide
    x: 80
    y: 610
    width: 400
    text: "Full width "
    buttonSize: S
    fullWidth: true
`

// Default returns the built-in demo scene.
func Default() (*Scene, error) {
	return Parse([]byte(defaultYAML))
}
