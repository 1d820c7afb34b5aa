package cmd

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"carrierops/internal/adapters/out/postgres"
	"carrierops/internal/adapters/out/rediscache"
	"carrierops/internal/core/application/usecases/commands"
	"carrierops/internal/core/application/usecases/queries"
	"carrierops/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	loadCache  ports.LoadCache
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		loadCache:  rediscache.NewRedisLoadCache(redisClient),
	}
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateApplyDriverActionCommandHandler() commands.ApplyDriverActionCommandHandler {
	return commands.NewApplyDriverActionCommandHandler(c.loadUoWFactory(), c.loadCache)
}

func (c *CompositionRoot) CreateApplyDispatcherActionCommandHandler() commands.ApplyDispatcherActionCommandHandler {
	return commands.NewApplyDispatcherActionCommandHandler(c.dispatchUoWFactory(), c.loadCache)
}

func (c *CompositionRoot) CreateAttachDocumentCommandHandler() commands.AttachDocumentCommandHandler {
	return commands.NewAttachDocumentCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFleetLoadsQueryHandler() queries.GetFleetLoadsQueryHandler {
	return queries.NewGetFleetLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadEventsQueryHandler() queries.GetLoadEventsQueryHandler {
	return queries.NewGetLoadEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalledLoadsQueryHandler() queries.GetStalledLoadsQueryHandler {
	return queries.NewGetStalledLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
