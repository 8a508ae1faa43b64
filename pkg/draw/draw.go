// Package draw renders a manager's pipeline topology as a DOT graph with
// nodes colored by pipeline error rate.
package draw

import (
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	graphdraw "github.com/dominikbraun/graph/draw"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/codenexus/nexusflow/pkg/pipeline"
	"github.com/codenexus/nexusflow/pkg/pipeline/manager"
)

const managerVertex = "manager"

const maxRGB = 240

// Drawer builds a directed graph of pipelines and their stages.
type Drawer struct {
	graph graph.Graph[string, string]
}

// New creates a new drawer.
func New() *Drawer {
	return &Drawer{
		graph: graph.New(graph.StringHash, graph.Directed()),
	}
}

// AddManager adds the manager's registered pipelines and their stages to the
// graph. Pipeline vertices are filled on a green-to-red scale by error rate.
func (d *Drawer) AddManager(m *manager.Manager) error {
	err := d.graph.AddVertex(managerVertex, graph.VertexAttribute("shape", "box"))
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrap(err, "unable to add manager vertex")
	}

	for _, p := range m.Pipelines() {
		if err := d.addPipeline(p); err != nil {
			return err
		}
	}

	return nil
}

// AddChain adds edges between consecutive pipeline identifiers so chained
// flows show up in the rendering.
func (d *Drawer) AddChain(ids ...string) error {
	for i := 1; i < len(ids); i++ {
		err := d.graph.AddEdge(ids[i-1], ids[i], graph.EdgeAttribute("style", "dashed"))
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return errors.Wrapf(err, "unable to add chain edge from %s to %s", ids[i-1], ids[i])
		}
	}

	return nil
}

// Render writes the graph in DOT format.
func (d *Drawer) Render(w io.Writer) error {
	return errors.Wrap(graphdraw.DOT(d.graph, w), "unable to render dot graph")
}

func (d *Drawer) addPipeline(p pipeline.Pipeline) error {
	fill, err := errRateColor(p.Stats())
	if err != nil {
		return err
	}

	err = d.graph.AddVertex(p.ID(),
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("fillcolor", fill),
		graph.VertexAttribute("xlabel", string(p.Format())),
	)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrapf(err, "unable to add pipeline vertex %s", p.ID())
	}

	err = d.graph.AddEdge(managerVertex, p.ID())
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to link manager to %s", p.ID())
	}

	parent := p.ID()
	for _, stage := range p.Stages() {
		name := fmt.Sprintf("%s/%s", p.ID(), stage.Name())

		err = d.graph.AddVertex(name)
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return errors.Wrapf(err, "unable to add stage vertex %s", name)
		}

		err = d.graph.AddEdge(parent, name)
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return errors.Wrapf(err, "unable to add edge from %s to %s", parent, name)
		}

		parent = name
	}

	return nil
}

// errRateColor maps a pipeline's error rate onto a green-to-red scale.
func errRateColor(stats pipeline.Stats) (string, error) {
	errRate := 0.0
	if stats.Processed > 0 {
		errRate = float64(stats.Errors) / float64(stats.Processed)
	}

	red := maxRGB * errRate
	green := -maxRGB*errRate + maxRGB

	fill, err := colors.RGB(uint8(red), uint8(green), 0) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return fill.ToHEX().String(), nil
}
