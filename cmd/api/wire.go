//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/x/cache"
	"github.com/characterhub/characterhub/x/character"
	"github.com/characterhub/characterhub/x/conversation"
	"github.com/characterhub/characterhub/x/favorite"
	"github.com/characterhub/characterhub/x/library"
	"github.com/characterhub/characterhub/x/notification"
	"github.com/characterhub/characterhub/x/proxy"
	"github.com/characterhub/characterhub/x/role"
	"github.com/characterhub/characterhub/x/tag"
	"github.com/characterhub/characterhub/x/user"
)

var characterHandlerProvider = wire.NewSet(character.NewHandler)
var roleHandlerProvider = wire.NewSet(role.NewHandler)
var tagHandlerProvider = wire.NewSet(tag.NewHandler)
var notificationHandlerProvider = wire.NewSet(notification.NewHandler)
var userHandlerProvider = wire.NewSet(user.NewHandler)
var conversationHandlerProvider = wire.NewSet(conversation.NewHandler)
var favoriteHandlerProvider = wire.NewSet(favorite.NewHandler)

func SetupForwarder(cli client.Client) *proxy.Forwarder {
	wire.Build(proxy.NewForwarder)
	return nil
}

func SetupCharacterHandler(forwarder *proxy.Forwarder) character.Handler {
	wire.Build(characterHandlerProvider)
	return nil
}

func SetupRoleHandler(forwarder *proxy.Forwarder) role.Handler {
	wire.Build(roleHandlerProvider)
	return nil
}

func SetupTagHandler(forwarder *proxy.Forwarder) tag.Handler {
	wire.Build(tagHandlerProvider)
	return nil
}

func SetupNotificationHandler(forwarder *proxy.Forwarder) notification.Handler {
	wire.Build(notificationHandlerProvider)
	return nil
}

func SetupUserHandler(forwarder *proxy.Forwarder) user.Handler {
	wire.Build(userHandlerProvider)
	return nil
}

func SetupConversationHandler(forwarder *proxy.Forwarder) conversation.Handler {
	wire.Build(conversationHandlerProvider)
	return nil
}

func SetupFavoriteHandler(forwarder *proxy.Forwarder) favorite.Handler {
	wire.Build(favoriteHandlerProvider)
	return nil
}

func SetupLibraryHandler(cli client.Client, mc *memcache.Client) library.Handler {
	wire.Build(library.NewHandler, library.NewService, cache.NewCache)
	return nil
}
