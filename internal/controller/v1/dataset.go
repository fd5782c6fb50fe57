package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/pkg/cachectrl"
	"github.com/dragon-traveler/wiki-backend/internal/server/svr"
	"github.com/dragon-traveler/wiki-backend/internal/service"
	"github.com/dragon-traveler/wiki-backend/internal/util/rekuest"
)

type Dataset struct {
	fx.In

	CodeService           *service.Code
	GearService           *service.Gear
	TeamService           *service.Team
	FactionService        *service.Faction
	HowlkinService        *service.Howlkin
	ArtifactService       *service.Artifact
	ResourceService       *service.Resource
	SubclassService       *service.Subclass
	TierListService       *service.TierList
	CharacterService      *service.Character
	WyrmspellService      *service.Wyrmspell
	UsefulLinkService     *service.UsefulLink
	StatusEffectService   *service.StatusEffect
	NoblePhantasmService  *service.NoblePhantasm
	GoldenAllianceService *service.GoldenAlliance
}

func RegisterDataset(v1 *svr.V1, c Dataset) {
	v1.Get("/characters", c.GetCharacters)
	v1.Get("/characters/:name", c.GetCharacterByName)
	v1.Get("/factions", c.GetFactions)
	v1.Get("/wyrmspells", c.GetWyrmspells)
	v1.Get("/teams", c.GetTeams)
	v1.Get("/teams/:name", c.GetTeamByName)
	v1.Get("/tier-lists", c.GetTierLists)
	v1.Get("/tier-lists/:name", c.GetTierListByName)
	v1.Get("/gear", c.GetGears)
	v1.Get("/artifacts", c.GetArtifacts)
	v1.Get("/status-effects", c.GetStatusEffects)
	v1.Get("/codes", c.GetCodes)
	v1.Get("/useful-links", c.GetUsefulLinks)
	v1.Get("/noble-phantasms", c.GetNoblePhantasms)
	v1.Get("/noble-phantasms/:name", c.GetNoblePhantasmByName)
	v1.Get("/howlkins", c.GetHowlkins)
	v1.Get("/golden-alliances", c.GetGoldenAlliances)
	v1.Get("/subclasses", c.GetSubclasses)
	v1.Get("/resources", c.GetResources)
}

func (c Dataset) lastModified(ctx *fiber.Ctx, key string) {
	var lastModifiedTime time.Time
	if err := cache.LastModifiedTime.Get(key, &lastModifiedTime); err != nil {
		lastModifiedTime = time.Now()
	}
	cachectrl.OptIn(ctx, lastModifiedTime)
}

// @Summary      Get All Characters
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.Character
// @Router       /api/v1/characters [GET]
func (c Dataset) GetCharacters(ctx *fiber.Ctx) error {
	characters, err := c.CharacterService.GetCharacters(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[characters]")
	return ctx.JSON(characters)
}

// @Summary      Get a Character by Name
// @Tags         Dataset
// @Produce      json
// @Param        name  path  string  true  "Character Name"
// @Success      200  {object}  model.Character
// @Failure      400  {object}  wikierr.WikiError "No character with the given name"
// @Router       /api/v1/characters/{name} [GET]
func (c Dataset) GetCharacterByName(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if err := rekuest.ValidVar(ctx, name, "required,max=64"); err != nil {
		return err
	}

	character, err := c.CharacterService.GetCharacterByName(ctx.UserContext(), name)
	if err != nil {
		return err
	}
	return ctx.JSON(character)
}

// @Summary      Get All Factions
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.Faction
// @Router       /api/v1/factions [GET]
func (c Dataset) GetFactions(ctx *fiber.Ctx) error {
	factions, err := c.FactionService.GetFactions(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[factions]")
	return ctx.JSON(factions)
}

// @Summary      Get All Wyrmspells
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.Wyrmspell
// @Router       /api/v1/wyrmspells [GET]
func (c Dataset) GetWyrmspells(ctx *fiber.Ctx) error {
	wyrmspells, err := c.WyrmspellService.GetWyrmspells(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[wyrmspells]")
	return ctx.JSON(wyrmspells)
}

// @Summary      Get All Teams
// @Tags         Dataset
// @Produce      json
// @Param        contentType  query  string  false  "Only return teams for this content type"
// @Success      200  {array}  model.Team
// @Router       /api/v1/teams [GET]
func (c Dataset) GetTeams(ctx *fiber.Ctx) error {
	contentType := ctx.Query("contentType")
	if contentType != "" {
		if err := rekuest.ValidContentType(ctx, contentType); err != nil {
			return err
		}
		teams, err := c.TeamService.GetTeamsByContentType(ctx.UserContext(), contentType)
		if err != nil {
			return err
		}
		return ctx.JSON(teams)
	}

	teams, err := c.TeamService.GetTeams(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[teams]")
	return ctx.JSON(teams)
}

// @Summary      Get a Team by Name
// @Tags         Dataset
// @Produce      json
// @Param        name  path  string  true  "Team Name"
// @Success      200  {object}  model.Team
// @Failure      400  {object}  wikierr.WikiError "No team with the given name"
// @Router       /api/v1/teams/{name} [GET]
func (c Dataset) GetTeamByName(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if err := rekuest.ValidVar(ctx, name, "required,max=64"); err != nil {
		return err
	}

	team, err := c.TeamService.GetTeamByName(ctx.UserContext(), name)
	if err != nil {
		return err
	}
	return ctx.JSON(team)
}

// @Summary      Get All Tier Lists
// @Tags         Dataset
// @Produce      json
// @Param        contentType  query  string  false  "Only return tier lists for this content type"
// @Success      200  {array}  model.TierList
// @Router       /api/v1/tier-lists [GET]
func (c Dataset) GetTierLists(ctx *fiber.Ctx) error {
	contentType := ctx.Query("contentType")
	if contentType != "" {
		if err := rekuest.ValidContentType(ctx, contentType); err != nil {
			return err
		}
		tierLists, err := c.TierListService.GetTierListsByContentType(ctx.UserContext(), contentType)
		if err != nil {
			return err
		}
		return ctx.JSON(tierLists)
	}

	tierLists, err := c.TierListService.GetTierLists(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[tierLists]")
	return ctx.JSON(tierLists)
}

// @Summary      Get a Tier List by Name
// @Tags         Dataset
// @Produce      json
// @Param        name  path  string  true  "Tier List Name"
// @Success      200  {object}  model.TierList
// @Failure      400  {object}  wikierr.WikiError "No tier list with the given name"
// @Router       /api/v1/tier-lists/{name} [GET]
func (c Dataset) GetTierListByName(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if err := rekuest.ValidVar(ctx, name, "required,max=64"); err != nil {
		return err
	}

	tierList, err := c.TierListService.GetTierListByName(ctx.UserContext(), name)
	if err != nil {
		return err
	}
	return ctx.JSON(tierList)
}

// @Summary      Get All Gear
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.Gear
// @Router       /api/v1/gear [GET]
func (c Dataset) GetGears(ctx *fiber.Ctx) error {
	gears, err := c.GearService.GetGears(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[gears]")
	return ctx.JSON(gears)
}

// @Summary      Get All Artifacts
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.Artifact
// @Router       /api/v1/artifacts [GET]
func (c Dataset) GetArtifacts(ctx *fiber.Ctx) error {
	artifacts, err := c.ArtifactService.GetArtifacts(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[artifacts]")
	return ctx.JSON(artifacts)
}

// @Summary      Get All Status Effects
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.StatusEffect
// @Router       /api/v1/status-effects [GET]
func (c Dataset) GetStatusEffects(ctx *fiber.Ctx) error {
	statusEffects, err := c.StatusEffectService.GetStatusEffects(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[statusEffects]")
	return ctx.JSON(statusEffects)
}

// @Summary      Get All Redemption Codes
// @Tags         Dataset
// @Produce      json
// @Param        active  query  bool  false  "Only return codes that are still active"
// @Success      200  {array}  model.Code
// @Router       /api/v1/codes [GET]
func (c Dataset) GetCodes(ctx *fiber.Ctx) error {
	if ctx.QueryBool("active") {
		codes, err := c.CodeService.GetActiveCodes(ctx.UserContext())
		if err != nil {
			return err
		}
		return ctx.JSON(codes)
	}

	codes, err := c.CodeService.GetCodes(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[codes]")
	return ctx.JSON(codes)
}

// @Summary      Get All Useful Links
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.UsefulLink
// @Router       /api/v1/useful-links [GET]
func (c Dataset) GetUsefulLinks(ctx *fiber.Ctx) error {
	usefulLinks, err := c.UsefulLinkService.GetUsefulLinks(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[usefulLinks]")
	return ctx.JSON(usefulLinks)
}

// @Summary      Get All Noble Phantasms
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.NoblePhantasm
// @Router       /api/v1/noble-phantasms [GET]
func (c Dataset) GetNoblePhantasms(ctx *fiber.Ctx) error {
	noblePhantasms, err := c.NoblePhantasmService.GetNoblePhantasms(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[noblePhantasms]")
	return ctx.JSON(noblePhantasms)
}

// @Summary      Get a Noble Phantasm by Name
// @Tags         Dataset
// @Produce      json
// @Param        name  path  string  true  "Noble Phantasm Name"
// @Success      200  {object}  model.NoblePhantasm
// @Failure      400  {object}  wikierr.WikiError "No noble phantasm with the given name"
// @Router       /api/v1/noble-phantasms/{name} [GET]
func (c Dataset) GetNoblePhantasmByName(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if err := rekuest.ValidVar(ctx, name, "required,max=64"); err != nil {
		return err
	}

	noblePhantasm, err := c.NoblePhantasmService.GetNoblePhantasmByName(ctx.UserContext(), name)
	if err != nil {
		return err
	}
	return ctx.JSON(noblePhantasm)
}

// @Summary      Get All Howlkins
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.Howlkin
// @Router       /api/v1/howlkins [GET]
func (c Dataset) GetHowlkins(ctx *fiber.Ctx) error {
	howlkins, err := c.HowlkinService.GetHowlkins(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[howlkins]")
	return ctx.JSON(howlkins)
}

// @Summary      Get All Golden Alliances
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.GoldenAlliance
// @Router       /api/v1/golden-alliances [GET]
func (c Dataset) GetGoldenAlliances(ctx *fiber.Ctx) error {
	goldenAlliances, err := c.GoldenAllianceService.GetGoldenAlliances(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[goldenAlliances]")
	return ctx.JSON(goldenAlliances)
}

// @Summary      Get All Subclasses
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.Subclass
// @Router       /api/v1/subclasses [GET]
func (c Dataset) GetSubclasses(ctx *fiber.Ctx) error {
	subclasses, err := c.SubclassService.GetSubclasses(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[subclasses]")
	return ctx.JSON(subclasses)
}

// @Summary      Get All Resources
// @Tags         Dataset
// @Produce      json
// @Success      200  {array}  model.Resource
// @Router       /api/v1/resources [GET]
func (c Dataset) GetResources(ctx *fiber.Ctx) error {
	resources, err := c.ResourceService.GetResources(ctx.UserContext())
	if err != nil {
		return err
	}
	c.lastModified(ctx, "[resources]")
	return ctx.JSON(resources)
}
