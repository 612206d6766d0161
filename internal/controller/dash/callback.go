package dash

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/core/dashboard"
	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
	"github.com/cellviz/nicodash/internal/pkg/cachectrl"
	"github.com/cellviz/nicodash/internal/pkg/flog"
	"github.com/cellviz/nicodash/internal/server/svr"
)

type Callback struct {
	fx.In

	DashboardService *dashboard.Service
}

func RegisterCallback(dash *svr.Dash, c Callback) {
	dash.Post("/_dash-update-component", c.UpdateComponent)
}

// UpdateComponent answers the dashboard's single callback: both slider values in,
// both figures out.
func (c *Callback) UpdateComponent(ctx *fiber.Ctx) error {
	body := ctx.Body()
	if !gjson.ValidBytes(body) {
		return apperr.ErrInvalidReq.Msg("request body is not valid JSON")
	}

	var state model.SelectionState
	var err error
	if state.Nicotine, err = inputValue(body, constant.ControlNicotine); err != nil {
		return err
	}
	if state.Medicine, err = inputValue(body, constant.ControlMedicine); err != nil {
		return err
	}

	frame, err := c.DashboardService.Render(ctx.UserContext(), state)
	if err != nil {
		return err
	}

	flog.DebugFrom(ctx).
		Str("evt.name", "dash.callback").
		Int("nicotine", state.Nicotine).
		Int("medicine", state.Medicine).
		Msg("rendered dashboard frame")

	cachectrl.OptOut(ctx)
	return ctx.JSON(fiber.Map{
		"multi": true,
		"response": fiber.Map{
			constant.OutputCytokineGraph: fiber.Map{
				dashboard.PropertyFigure: frame.Figures.CytokineLevels,
			},
			constant.OutputCellHealthGraph: fiber.Map{
				dashboard.PropertyFigure: frame.Figures.CellHealth,
			},
		},
	})
}

func inputValue(body []byte, id string) (int, error) {
	v := gjson.GetBytes(body, `inputs.#(id=="`+id+`").value`)
	if !v.Exists() || v.Type != gjson.Number {
		return 0, apperr.ErrInvalidReq.Msg("missing numeric input %q", id)
	}

	f := v.Float()
	if f != math.Trunc(f) {
		return 0, apperr.ErrInvalidReq.Msg("input %q must be an integer", id)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, apperr.ErrOutOfRange.Msg("input %q is out of range", id)
	}
	return int(f), nil
}
