package cli

import (
	"context"
	"fmt"

	httpClient "github.com/montagemotion/backoffice/internal/client/api"
	"github.com/montagemotion/backoffice/internal/client/auth"
	"github.com/montagemotion/backoffice/internal/client/catalog"
	"github.com/montagemotion/backoffice/internal/client/forms"
	"github.com/montagemotion/backoffice/internal/client/iocli"
)

// Cli связывает команды консоли с сервисами клиента
type Cli struct {
	apiClient      httpClient.ClientAPI
	authService    auth.Service
	catalogService catalog.Service
	io             iocli.IO
}

// New создает CLI поверх готовых сервисов
func New(apiClient httpClient.ClientAPI, authService auth.Service, catalogService catalog.Service, io iocli.IO) *Cli {
	return &Cli{
		apiClient:      apiClient,
		authService:    authService,
		catalogService: catalogService,
		io:             io,
	}
}

// Run выполняет одну команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "collections":
		return c.runCollections()
	case "list":
		return c.runList(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "create":
		return c.runCreate(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "order":
		return c.runOrder(ctx, args)
	case "move":
		return c.runMove(ctx, args)
	case "commit":
		return c.runCommit(ctx, args)
	case "reset-order":
		return c.runResetOrder(ctx, args)
	case "upload":
		return c.runUpload(ctx, args)
	case "help", "":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// form строит форму заполнения полей поверх API клиента
func (c *Cli) form(accessToken string) *forms.Form {
	return forms.New(c.io, c.uploadFile(accessToken))
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println("Montage Motion back office CLI")
	c.io.Println()
	c.io.Println("Usage: backoffice <command> [arguments]")
	c.io.Println()
	c.io.Println("Auth commands:")
	c.io.Println("  register                       create a new admin account")
	c.io.Println("  login                          log in and store the session")
	c.io.Println("  logout                         log out and drop the session")
	c.io.Println("  status                         show session status")
	c.io.Println()
	c.io.Println("Content commands:")
	c.io.Println("  collections                    list available collections")
	c.io.Println("  list <collection> [--refresh]  list collection items")
	c.io.Println("  show <collection> <id>         show a single item")
	c.io.Println("  create <collection>            create an item interactively")
	c.io.Println("  update <collection> <id>       edit an item interactively")
	c.io.Println("  delete <collection> <id>       delete an item")
	c.io.Println()
	c.io.Println("Ordering commands:")
	c.io.Println("  order <collection>             show the working order")
	c.io.Println("  move <collection> <from> <to>  move an item in the working order")
	c.io.Println("  commit <collection>            push the working order to the server")
	c.io.Println("  reset-order <collection>       drop local order changes")
	c.io.Println()
	c.io.Println("Media commands:")
	c.io.Println("  upload <image|video> <path>    upload a media file")
}
