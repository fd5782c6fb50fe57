package cache

import (
	"sync"
	"time"

	"gopkg.in/guregu/null.v3"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/pkg/cache"
)

type Flusher func() error

var (
	Characters          *cache.Singular[[]*model.Character]
	CharactersMapByName *cache.Singular[map[string]*model.Character]

	Factions *cache.Singular[[]*model.Faction]

	Wyrmspells          *cache.Singular[[]*model.Wyrmspell]
	WyrmspellsMapByName *cache.Singular[map[string]*model.Wyrmspell]

	Teams     *cache.Singular[[]*model.Team]
	TierLists *cache.Singular[[]*model.TierList]

	Gears     *cache.Singular[[]*model.Gear]
	Artifacts *cache.Singular[[]*model.Artifact]

	StatusEffects *cache.Singular[[]*model.StatusEffect]
	Codes         *cache.Singular[[]*model.Code]
	UsefulLinks   *cache.Singular[[]*model.UsefulLink]

	NoblePhantasms  *cache.Singular[[]*model.NoblePhantasm]
	Howlkins        *cache.Singular[[]*model.Howlkin]
	GoldenAlliances *cache.Singular[[]*model.GoldenAlliance]
	Subclasses      *cache.Singular[[]*model.Subclass]
	Resources       *cache.Singular[[]*model.Resource]

	SuggestionByTaskID *cache.Set[model.Suggestion]

	SuggestionRejectRules *cache.Singular[[]*model.SuggestionRejectRule]

	LastModifiedTime *cache.Set[time.Time]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize() {
	once.Do(initializeCaches)
}

func Delete(name string, key null.String) error {
	if key.Valid {
		if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	} else {
		if _, ok := SingularFlusherMap[name]; ok {
			if err := SingularFlusherMap[name](); err != nil {
				return err
			}
		} else if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	}
	return nil
}

func initializeCaches() {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// character
	Characters = cache.NewSingular[[]*model.Character]("characters")
	CharactersMapByName = cache.NewSingular[map[string]*model.Character]("charactersMapByName")

	SingularFlusherMap["characters"] = Characters.Delete
	SingularFlusherMap["charactersMapByName"] = CharactersMapByName.Delete

	// faction
	Factions = cache.NewSingular[[]*model.Faction]("factions")

	SingularFlusherMap["factions"] = Factions.Delete

	// wyrmspell
	Wyrmspells = cache.NewSingular[[]*model.Wyrmspell]("wyrmspells")
	WyrmspellsMapByName = cache.NewSingular[map[string]*model.Wyrmspell]("wyrmspellsMapByName")

	SingularFlusherMap["wyrmspells"] = Wyrmspells.Delete
	SingularFlusherMap["wyrmspellsMapByName"] = WyrmspellsMapByName.Delete

	// team
	Teams = cache.NewSingular[[]*model.Team]("teams")

	SingularFlusherMap["teams"] = Teams.Delete

	// tierList
	TierLists = cache.NewSingular[[]*model.TierList]("tierLists")

	SingularFlusherMap["tierLists"] = TierLists.Delete

	// gear
	Gears = cache.NewSingular[[]*model.Gear]("gears")

	SingularFlusherMap["gears"] = Gears.Delete

	// artifact
	Artifacts = cache.NewSingular[[]*model.Artifact]("artifacts")

	SingularFlusherMap["artifacts"] = Artifacts.Delete

	// statusEffect
	StatusEffects = cache.NewSingular[[]*model.StatusEffect]("statusEffects")

	SingularFlusherMap["statusEffects"] = StatusEffects.Delete

	// code
	Codes = cache.NewSingular[[]*model.Code]("codes")

	SingularFlusherMap["codes"] = Codes.Delete

	// usefulLink
	UsefulLinks = cache.NewSingular[[]*model.UsefulLink]("usefulLinks")

	SingularFlusherMap["usefulLinks"] = UsefulLinks.Delete

	// noblePhantasm
	NoblePhantasms = cache.NewSingular[[]*model.NoblePhantasm]("noblePhantasms")

	SingularFlusherMap["noblePhantasms"] = NoblePhantasms.Delete

	// howlkin
	Howlkins = cache.NewSingular[[]*model.Howlkin]("howlkins")
	GoldenAlliances = cache.NewSingular[[]*model.GoldenAlliance]("goldenAlliances")

	SingularFlusherMap["howlkins"] = Howlkins.Delete
	SingularFlusherMap["goldenAlliances"] = GoldenAlliances.Delete

	// subclass
	Subclasses = cache.NewSingular[[]*model.Subclass]("subclasses")

	SingularFlusherMap["subclasses"] = Subclasses.Delete

	// resource
	Resources = cache.NewSingular[[]*model.Resource]("resources")

	SingularFlusherMap["resources"] = Resources.Delete

	// suggestion
	SuggestionByTaskID = cache.NewSet[model.Suggestion]("suggestion#taskId")
	SuggestionRejectRules = cache.NewSingular[[]*model.SuggestionRejectRule]("suggestionRejectRules")

	SetMap["suggestion#taskId"] = SuggestionByTaskID.Flush
	SingularFlusherMap["suggestionRejectRules"] = SuggestionRejectRules.Delete

	// others
	LastModifiedTime = cache.NewSet[time.Time]("lastModifiedTime")

	SetMap["lastModifiedTime"] = LastModifiedTime.Flush
}
