package actions

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

// HandleNavigate запоминает точку назначения и взводит командное событие.
// Само движение начнет FSM: в состоянии DEAD или TRADING команда сгорит.
func HandleNavigate(ctx handlers.Context, p api.NavigatePayload) (handlers.Result, error) {
	actor := ctx.Actor

	dest := actor.Mover.NearestReachable(mgl64.Vec3{p.X, p.Y, p.Z})
	actor.NavigateDest = dest
	actor.NavigateStopping = p.Stop
	actor.Cmd.Raise(domain.CmdNavigateTo)

	return handlers.EmptyResult(), nil
}

// HandleCancel прерывает текущее действие (движение, каст).
func HandleCancel(ctx handlers.Context) (handlers.Result, error) {
	ctx.Actor.Cmd.Raise(domain.CmdCancelAction)
	return handlers.EmptyResult(), nil
}

// HandleRespawn просит возрождение. Срабатывает только в состоянии DEAD.
func HandleRespawn(ctx handlers.Context) (handlers.Result, error) {
	ctx.Actor.Cmd.Raise(domain.CmdRespawn)
	return handlers.EmptyResult(), nil
}

// HandleTarget меняет цель игрока. Скрытые трупы целью не становятся.
func HandleTarget(ctx handlers.Context, p api.TargetPayload) (handlers.Result, error) {
	target := ctx.Tick.World.Get(p.TargetID)
	if target == nil || target.E().Hidden {
		return handlers.Reject("Цель не найдена."), nil
	}

	ctx.Actor.Target = target
	return handlers.EmptyResult(), nil
}
