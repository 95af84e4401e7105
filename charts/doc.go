// Package charts draws the page-view charts with gonum/plot.
//
// Each renderer returns a *Figure without touching the filesystem:
//
//	fig, err := charts.Box(cleaned)
//	if err != nil {
//	    return err
//	}
//	title := fig.Panel(0, 1).Title.Text
//
// Persisting is a separate step:
//
//	err = fig.Save("box_plot.png")
//
// Rendering is deterministic: the same figure always encodes to the same
// PNG bytes.
package charts
