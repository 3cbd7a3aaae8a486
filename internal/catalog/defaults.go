package catalog

import "github.com/osse101/CaseForge_Go/internal/domain"

var defaultCases = []CaseDef{
	{ID: "chupacabra", Name: "ЧУПАКАБРА", Price: 29, ItemCount: 48, IsNew: true},
	{ID: "pikovaya-dama", Name: "ПИКОВАЯ ДАМА", Price: 79, ItemCount: 47, IsNew: true},
	{ID: "bugimen", Name: "БУГИМЕН", Price: 149, ItemCount: 48, IsNew: true},
	{ID: "djinn", Name: "ДЖИНН", Price: 499, ItemCount: 45, IsNew: true},
	{ID: "slender", Name: "СЛЕНДЕР", Price: 999, ItemCount: 47},
	{ID: "mirage", Name: "MIRAGE", Price: 35, ItemCount: 44},
	{ID: "nuke", Name: "NUKE", Price: 85, ItemCount: 41},
	{ID: "ancient", Name: "ANCIENT", Price: 275, ItemCount: 38},
	{ID: "inferno", Name: "INFERNO", Price: 555, ItemCount: 42},
	{ID: "dust2", Name: "DUST 2", Price: 1355, ItemCount: 42},
}

// Indexed by rarity order
var defaultPools = [domain.RarityCount][]PoolItem{
	{
		{Name: "Glock | Выцвет", Icon: IconGun},
		{Name: "P250 | Сандуни", Icon: IconGun},
		{Name: "MP9 | Дартс", Icon: IconTarget},
	},
	{
		{Name: "AK-47 | Редлайн", Icon: IconGun},
		{Name: "USP-S | Кортекс", Icon: IconTarget},
		{Name: "FAMAS | Крио", Icon: IconSwords},
	},
	{
		{Name: "AWP | Азимов", Icon: IconTarget},
		{Name: "M4A4 | Хоулинг", Icon: IconGun},
		{Name: "Галил | Церберус", Icon: IconSwords},
	},
	{
		{Name: "AK-47 | Огненный змей", Icon: IconKnife},
		{Name: "AWP | Драконья легенда", Icon: IconKnife},
		{Name: "M4A4 | Вой", Icon: IconKnife},
	},
}

var defaultTierPrices = [domain.RarityCount]float64{50, 150, 400, 1200}

var defaultPromos = []PromoDef{
	{Code: "WELCOME100", Reward: 100, Description: "Приветственный бонус для новых игроков"},
	{Code: "LUCKY777", Reward: 777, Description: "Удача на твоей стороне!"},
	{Code: "WEEKEND50", Reward: 50, Description: "Выходной бонус"},
	{Code: "CS2PROMO", Reward: 250, Description: "Специальное предложение CS2"},
	{Code: "MEGABONUS", Reward: 500, Description: "Мегабонус для активных игроков"},
	{Code: "SIGN-15", Percent: 0.15, Description: "15% к балансу", Hidden: true},
}

var defaultMarket = []MarketItem{
	{ID: "1", Name: "AK-47 | Redline", WeaponType: "Rifle", Grade: domain.GradeClassified, Price: 450},
	{ID: "2", Name: "AWP | Asiimov", WeaponType: "Sniper Rifle", Grade: domain.GradeCovert, Price: 1200},
	{ID: "3", Name: "M4A4 | Howl", WeaponType: "Rifle", Grade: domain.GradeCovert, Price: 8500},
	{ID: "4", Name: "Desert Eagle | Blaze", WeaponType: "Pistol", Grade: domain.GradeRestricted, Price: 680},
	{ID: "5", Name: "Glock-18 | Fade", WeaponType: "Pistol", Grade: domain.GradeRestricted, Price: 520},
	{ID: "6", Name: "USP-S | Kill Confirmed", WeaponType: "Pistol", Grade: domain.GradeClassified, Price: 780},
	{ID: "7", Name: "P250 | Asiimov", WeaponType: "Pistol", Grade: domain.GradeClassified, Price: 320},
	{ID: "8", Name: "M4A1-S | Hyper Beast", WeaponType: "Rifle", Grade: domain.GradeClassified, Price: 590},
	{ID: "9", Name: "StatTrak™ AK-47 | Vulcan", WeaponType: "Rifle", Grade: domain.GradeClassified, Price: 1850},
	{ID: "10", Name: "Karambit | Fade", WeaponType: "Knife", Grade: domain.GradeExtraordinary, Price: 12500},
	{ID: "11", Name: "Butterfly Knife | Tiger Tooth", WeaponType: "Knife", Grade: domain.GradeExtraordinary, Price: 9800},
	{ID: "12", Name: "Bayonet | Doppler", WeaponType: "Knife", Grade: domain.GradeExtraordinary, Price: 7200},
	{ID: "13", Name: "AK-47 | Fire Serpent", WeaponType: "Rifle", Grade: domain.GradeClassified, Price: 3200},
	{ID: "14", Name: "AWP | Dragon Lore", WeaponType: "Sniper Rifle", Grade: domain.GradeCovert, Price: 15000},
	{ID: "15", Name: "M4A4 | Emperor", WeaponType: "Rifle", Grade: domain.GradeClassified, Price: 420},
	{ID: "16", Name: "P90 | Asiimov", WeaponType: "SMG", Grade: domain.GradeClassified, Price: 280},
	{ID: "17", Name: "Five-SeveN | Case Hardened", WeaponType: "Pistol", Grade: domain.GradeMilSpec, Price: 180},
	{ID: "18", Name: "MP7 | Nemesis", WeaponType: "SMG", Grade: domain.GradeRestricted, Price: 220},
	{ID: "19", Name: "Galil AR | Sugar Rush", WeaponType: "Rifle", Grade: domain.GradeMilSpec, Price: 95},
	{ID: "20", Name: "MAC-10 | Neon Rider", WeaponType: "SMG", Grade: domain.GradeClassified, Price: 340},
	{ID: "21", Name: "SSG 08 | Blood in the Water", WeaponType: "Sniper Rifle", Grade: domain.GradeClassified, Price: 890},
	{ID: "22", Name: "StatTrak™ USP-S | Neo-Noir", WeaponType: "Pistol", Grade: domain.GradeClassified, Price: 1150},
	{ID: "23", Name: "Falchion Knife | Slaughter", WeaponType: "Knife", Grade: domain.GradeExtraordinary, Price: 4500},
	{ID: "24", Name: "M9 Bayonet | Crimson Web", WeaponType: "Knife", Grade: domain.GradeExtraordinary, Price: 6800},
	{ID: "25", Name: "Glock-18 | Water Elemental", WeaponType: "Pistol", Grade: domain.GradeRestricted, Price: 145},
	{ID: "26", Name: "AK-47 | Neon Revolution", WeaponType: "Rifle", Grade: domain.GradeClassified, Price: 680},
	{ID: "27", Name: "AWP | Neo-Noir", WeaponType: "Sniper Rifle", Grade: domain.GradeCovert, Price: 950},
	{ID: "28", Name: "Desert Eagle | Kumicho Dragon", WeaponType: "Pistol", Grade: domain.GradeCovert, Price: 1420},
	{ID: "29", Name: "StatTrak™ M4A4 | Asiimov", WeaponType: "Rifle", Grade: domain.GradeCovert, Price: 2100},
	{ID: "30", Name: "Talon Knife | Case Hardened", WeaponType: "Knife", Grade: domain.GradeExtraordinary, Price: 8900},
}
