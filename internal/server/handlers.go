package server

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/tilerc/internal/config"
	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/output"
	"github.com/mj1618/tilerc/internal/params"
	"github.com/mj1618/tilerc/internal/sim"
)

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) config() (*model.Config, *mcp.CallToolResult) {
	cfg, err := s.cache.Get()
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return cfg, nil
}

func (s *Server) handleKeys(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	text := params.String(args, "text", "")
	group := params.String(args, "group", "")

	var mods model.Modifier
	if err := mods.UnmarshalText([]byte(params.String(args, "mods", ""))); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg, errResult := s.config()
	if errResult != nil {
		return errResult, nil
	}

	keys := cfg.Keys
	if group != "" {
		keys = model.KeysForGroup(keys, group)
	}
	keys = model.FilterKeys(keys, text, mods)
	return toText(output.KeysResult{Count: len(keys), Keys: keys})
}

func (s *Server) handleLookup(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chord, err := model.ParseChord(params.String(request.GetArguments(), "chord", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg, errResult := s.config()
	if errResult != nil {
		return errResult, nil
	}
	key := model.FindKey(cfg.Keys, chord)
	if key == nil {
		return mcp.NewToolResultError("no binding for " + chord.String()), nil
	}
	return toText(key)
}

func (s *Server) handleGroups(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errResult := s.config()
	if errResult != nil {
		return errResult, nil
	}
	return toText(cfg.Groups)
}

func (s *Server) handleLayouts(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errResult := s.config()
	if errResult != nil {
		return errResult, nil
	}
	return toText(struct {
		Layouts  []model.Layout       `yaml:"layouts"`
		Floating model.FloatingLayout `yaml:"floating_layout"`
	}{cfg.Layouts, cfg.Floating})
}

func (s *Server) handleCheck(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Always validate what is on disk now.
	s.cache.Invalidate()
	cfg, errResult := s.config()
	if errResult != nil {
		return errResult, nil
	}
	return toText(Check(cfg))
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	script := params.String(request.GetArguments(), "steps", "")
	steps, err := sim.Parse(strings.NewReader(script))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := sim.Run(ctx, steps, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(res)
}

// Check validates cfg and summarizes it.
func Check(cfg *model.Config) output.CheckResult {
	res := output.CheckResult{
		OK:      true,
		Keys:    len(cfg.Keys),
		Groups:  len(cfg.Groups),
		Layouts: len(cfg.Layouts),
	}
	if err := config.Validate(cfg); err != nil {
		res.OK = false
		for _, line := range strings.Split(err.Error(), "\n") {
			if line != "" {
				res.Problems = append(res.Problems, line)
			}
		}
	}
	return res
}
