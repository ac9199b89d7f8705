package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/systems"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// Start запускает цикл симуляции в отдельной горутине.
func (s *GameService) Start() {
	go s.run()
}

// Stop останавливает цикл и дожидается его завершения. После возврата
// мир гарантированно не мутируется. Зовется только после Start.
func (s *GameService) Stop() {
	close(s.stop)
	<-s.done
}

// Shutdown останавливает цикл и делает финальное сохранение ростера.
func (s *GameService) Shutdown() {
	s.Stop()
	s.saveRoster(s.Clock.Now())
}

func (s *GameService) run() {
	defer close(s.done)

	interval := time.Duration(float64(time.Second) / s.Config.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"tick_rate": s.Config.TickRate,
	}).Info("Simulation loop started")

	for {
		select {
		case <-s.stop:
			logger.Log.Info("Simulation loop stopped")
			return
		case <-ticker.C:
			s.Tick(s.Clock.Now())
		}
	}
}

// Tick выполняет один шаг симуляции. Вынесен отдельно, чтобы тесты могли
// крутить мир без таймера реального времени.
func (s *GameService) Tick(now float64) {
	s.tick++
	ctx := &domain.TickContext{
		World:   s.World,
		Catalog: s.Catalog,
		Now:     now,
		DT:      1.0 / s.Config.TickRate,
		Rng:     s.rng,
	}

	s.drainJoins(ctx)
	s.drainLeaves(ctx)
	s.drainCommands(ctx)

	// Снимок порядка обхода: каст может зарегистрировать снаряд прямо
	// во время обновления.
	entities := append([]domain.Behaviour(nil), s.World.All()...)

	for _, b := range entities {
		kind := b.E().Kind
		if kind == enums.EntityKindPlayer || kind == enums.EntityKindMonster {
			systems.UpdateEntity(ctx, b)
		}
	}

	for _, b := range entities {
		e := b.E()
		if e.Kind == enums.EntityKindPlayer || e.Kind == enums.EntityKindMonster {
			e.Pos = e.Mover.Advance(e.Pos, e.Speed, ctx.DT)
		}
	}

	s.advanceProjectiles(ctx)

	for _, b := range entities {
		if p, ok := b.(*domain.Player); ok {
			p.Recover(now)
		}
	}

	s.publish(now)

	if now-s.lastSave >= s.Config.SaveInterval {
		s.lastSave = now
		s.saveRoster(now)
	}
}

func (s *GameService) drainJoins(ctx *domain.TickContext) {
	for {
		select {
		case p := <-s.JoinChan:
			s.World.Register(p)

			coins, err := s.Store.PendingCoins(p.Name)
			if err != nil {
				logger.Log.WithError(err).WithField("character", p.Name).Error("Coin order fetch failed")
			} else if coins > 0 {
				p.Coins += coins
				s.World.EmitInfo(p.ID, "Зачислены коины за покупку.")
			}

			logger.Log.WithFields(logrus.Fields{
				"entity_id": p.ID,
				"character": p.Name,
				"account":   p.Account,
			}).Info("Player entered world")
		default:
			return
		}
	}
}

func (s *GameService) drainLeaves(ctx *domain.TickContext) {
	for {
		select {
		case req := <-s.LeaveChan:
			s.mu.Lock()
			owner := s.owners[req.EntityID]
			s.mu.Unlock()
			if owner != req.Token {
				// Сущность уже принадлежит другой сессии: умерло старое
				// соединение после перехвата персонажа.
				logger.Log.WithField("entity_id", req.EntityID).Debug("Stale leave ignored")
				continue
			}

			p := s.World.GetPlayer(req.EntityID)
			if p == nil {
				continue
			}

			// Разрыв соединения рушит активный трейд целиком.
			systems.TradeCancel(p)

			if err := s.Store.SaveCharacter(recordFromPlayer(p, ctx.Now)); err != nil {
				logger.Log.WithError(err).WithField("character", p.Name).Error("Save on disconnect failed")
			}

			s.World.Unregister(req.EntityID)
			s.mu.Lock()
			delete(s.online, p.Name)
			delete(s.owners, req.EntityID)
			s.mu.Unlock()

			logger.Log.WithFields(logrus.Fields{
				"entity_id": req.EntityID,
				"character": p.Name,
			}).Info("Player left world")
		default:
			return
		}
	}
}

func (s *GameService) drainCommands(ctx *domain.TickContext) {
	for {
		select {
		case cmd := <-s.CommandChan:
			s.execute(ctx, cmd)
		default:
			return
		}
	}
}

func (s *GameService) execute(ctx *domain.TickContext, cmd queuedCommand) {
	actor := s.World.GetPlayer(cmd.EntityID)
	if actor == nil {
		logger.Log.WithFields(logrus.Fields{
			"entity_id": cmd.EntityID,
			"action":    cmd.Action,
		}).Debug("Command for absent player dropped")
		return
	}

	h, ok := s.handlers[cmd.Action]
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"entity_id": cmd.EntityID,
			"action":    cmd.Action,
		}).Warn("Unknown action")
		s.World.EmitInfo(actor.ID, "Неизвестная команда.")
		return
	}

	res, err := h(handlers.Context{Tick: ctx, Actor: actor}, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"entity_id": cmd.EntityID,
			"action":    cmd.Action,
		}).WithError(err).Warn("Command rejected")
		s.World.EmitInfo(actor.ID, "Некорректная команда.")
		return
	}

	if res.Msg != "" {
		s.World.EmitInfo(actor.ID, res.Msg)
	}
}

// advanceProjectiles двигает снаряды и убирает погасшие из мира.
func (s *GameService) advanceProjectiles(ctx *domain.TickContext) {
	var done []string
	for _, b := range append([]domain.Behaviour(nil), s.World.All()...) {
		proj, ok := b.(*domain.Projectile)
		if !ok {
			continue
		}

		if !proj.Resolved && proj.Advance(ctx.DT) {
			systems.ResolveProjectile(ctx, proj)
		}
		if proj.Resolved {
			done = append(done, proj.ID)
		}
	}
	for _, id := range done {
		s.World.Unregister(id)
	}
}

// publish раздает снапшоты всем подключенным игрокам и очищает буферы
// событий тика.
func (s *GameService) publish(now float64) {
	popups, messages := s.World.DrainEvents()

	for _, b := range s.World.All() {
		p, ok := b.(*domain.Player)
		if !ok || !s.Hub.HasSubscriber(p.ID) {
			continue
		}
		s.Hub.SendTo(p.ID, s.BuildStateFor(p, now, popups, messages))
	}
}
