package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// paymentMethods are the balances a purchase can settle against. The
// flows share this set; the wallet dashboard keeps its own balances in
// walletCurrencies below.
var paymentMethods = []domain.PaymentMethod{
	domain.FiatCurrency{ID: domain.GHC, Name: "Cedi Wallet", Sym: "₵", Flag: "🇬🇭", Bal: d("1200.00")},
	domain.FiatCurrency{ID: domain.NGN, Name: "NGN Wallet", Sym: "₦", Flag: "🇳🇬", Bal: d("75000.00")},
	domain.CryptoCurrency{ID: domain.BTC, Name: "Bitcoin", Sym: "BTC", Ico: "₿", Bal: d("0.0025")},
	domain.CryptoCurrency{ID: domain.BTCUSD, Name: "BTCUSD", Sym: "BTCUSD", Ico: "💰", Bal: d("150"), PeggedUSD: true},
	domain.CryptoCurrency{ID: domain.USDT, Name: "USDT", Sym: "USDT", Ico: "💵", Bal: d("500"), PeggedUSD: true},
	domain.CryptoCurrency{ID: domain.BUSD, Name: "BUSD", Sym: "BUSD", Ico: "💲", Bal: d("300"), PeggedUSD: true},
}

var networks = []domain.Network{
	{ID: "mtn", Name: "MTN", Logo: "🟡"},
	{ID: "vodafone", Name: "Vodafone", Logo: "🔴"},
	{ID: "airteltigo", Name: "AirtelTigo", Logo: "🔵"},
	{ID: "glo", Name: "Glo", Logo: "🟢"},
}

var presetAmounts = []int{5, 10, 20, 50, 100}

var recentNumbers = []domain.RecentNumber{
	{ID: "1", Name: "My Number", Number: "+233 50 123 4567"},
	{ID: "2", Name: "Mom", Number: "+233 24 987 6543"},
	{ID: "3", Name: "Dad", Number: "+233 27 456 7890"},
}

// dataPlans is keyed by network id. Prices are in cedi.
var dataPlans = map[string][]domain.DataPlan{
	"mtn": {
		{ID: "mtn-daily-1", Name: "Daily Lite", Size: "100MB", Validity: "1 Day", Price: d("1.5"), Description: "For light browsing and social media"},
		{ID: "mtn-daily-2", Name: "Daily Plus", Size: "300MB", Validity: "1 Day", Price: d("3"), Description: "For video streaming and downloads"},
		{ID: "mtn-weekly-1", Name: "Weekly Basic", Size: "500MB", Validity: "7 Days", Price: d("5"), Description: "Weekly casual use package"},
		{ID: "mtn-weekly-2", Name: "Weekly Pro", Size: "1.5GB", Validity: "7 Days", Price: d("10"), Description: "For regular weekly internet users"},
		{ID: "mtn-monthly-1", Name: "Monthly Lite", Size: "2GB", Validity: "30 Days", Price: d("15"), Description: "Basic monthly internet package"},
		{ID: "mtn-monthly-2", Name: "Monthly Plus", Size: "5GB", Validity: "30 Days", Price: d("25"), Description: "Enhanced monthly internet bundle"},
		{ID: "mtn-monthly-3", Name: "Monthly Ultra", Size: "10GB", Validity: "30 Days", Price: d("40"), Description: "For heavy internet users"},
		{ID: "mtn-monthly-4", Name: "Monthly Max", Size: "20GB", Validity: "30 Days", Price: d("75"), Description: "Maximum internet experience"},
	},
	"vodafone": {
		{ID: "voda-daily-1", Name: "Red Daily", Size: "150MB", Validity: "1 Day", Price: d("1.5"), Description: "Quick daily fix for essential tasks"},
		{ID: "voda-daily-2", Name: "Red Daily Plus", Size: "350MB", Validity: "1 Day", Price: d("3"), Description: "Enhanced daily browsing experience"},
		{ID: "voda-weekly-1", Name: "Red Weekly", Size: "600MB", Validity: "7 Days", Price: d("5"), Description: "Weekly internet essentials"},
		{ID: "voda-weekly-2", Name: "Red Weekly Plus", Size: "2GB", Validity: "7 Days", Price: d("10"), Description: "Superior weekly internet package"},
		{ID: "voda-monthly-1", Name: "Red Monthly", Size: "3GB", Validity: "30 Days", Price: d("15"), Description: "Monthly internet essentials"},
		{ID: "voda-monthly-2", Name: "Red Monthly Plus", Size: "6GB", Validity: "30 Days", Price: d("25"), Description: "Enhanced monthly internet package"},
		{ID: "voda-monthly-3", Name: "Red Monthly Ultra", Size: "12GB", Validity: "30 Days", Price: d("45"), Description: "Premium monthly internet bundle"},
	},
	"airteltigo": {
		{ID: "at-daily-1", Name: "AT Daily", Size: "120MB", Validity: "1 Day", Price: d("1.5"), Description: "Basic daily internet package"},
		{ID: "at-daily-2", Name: "AT Daily Plus", Size: "320MB", Validity: "1 Day", Price: d("3"), Description: "Enhanced daily internet experience"},
		{ID: "at-weekly-1", Name: "AT Weekly", Size: "550MB", Validity: "7 Days", Price: d("5"), Description: "Basic weekly internet package"},
		{ID: "at-weekly-2", Name: "AT Weekly Plus", Size: "1.8GB", Validity: "7 Days", Price: d("10"), Description: "Enhanced weekly internet bundle"},
		{ID: "at-monthly-1", Name: "AT Monthly", Size: "2.5GB", Validity: "30 Days", Price: d("15"), Description: "Monthly internet essentials"},
		{ID: "at-monthly-2", Name: "AT Monthly Plus", Size: "5.5GB", Validity: "30 Days", Price: d("25"), Description: "Superior monthly internet experience"},
		{ID: "at-monthly-3", Name: "AT Monthly Max", Size: "11GB", Validity: "30 Days", Price: d("42"), Description: "Maximum monthly internet bundle"},
	},
	"glo": {
		{ID: "glo-daily-1", Name: "Glo Daily", Size: "130MB", Validity: "1 Day", Price: d("1.5"), Description: "Quick daily internet package"},
		{ID: "glo-daily-2", Name: "Glo Daily Plus", Size: "330MB", Validity: "1 Day", Price: d("3"), Description: "Enhanced daily browsing bundle"},
		{ID: "glo-weekly-1", Name: "Glo Weekly", Size: "570MB", Validity: "7 Days", Price: d("5"), Description: "Weekly internet essentials"},
		{ID: "glo-weekly-2", Name: "Glo Weekly Plus", Size: "1.7GB", Validity: "7 Days", Price: d("10"), Description: "Superior weekly internet package"},
		{ID: "glo-monthly-1", Name: "Glo Monthly", Size: "2.2GB", Validity: "30 Days", Price: d("15"), Description: "Monthly internet basics"},
		{ID: "glo-monthly-2", Name: "Glo Monthly Plus", Size: "5.2GB", Validity: "30 Days", Price: d("25"), Description: "Enhanced monthly internet experience"},
		{ID: "glo-monthly-3", Name: "Glo Monthly Max", Size: "10.5GB", Validity: "30 Days", Price: d("41"), Description: "Maximum monthly internet bundle"},
	},
}

var serviceTypes = []domain.ServiceType{
	{ID: "electricity", Name: "Electricity", Icon: "Lightbulb"},
	{ID: "water", Name: "Water", Icon: "Droplet"},
	{ID: "internet", Name: "Internet", Icon: "Wifi"},
	{ID: "tv", Name: "TV", Icon: "Tv"},
}

var utilityProviders = []domain.UtilityProvider{
	{ID: "ecg", Name: "Electricity Company of Ghana", Type: "electricity", Description: "National electricity provider"},
	{ID: "nedco", Name: "Northern Electricity Distribution Company", Type: "electricity", Description: "Northern region electricity provider"},
	{ID: "gwcl", Name: "Ghana Water Company Ltd", Type: "water", Description: "National water provider"},
	{ID: "mtn-fiber", Name: "MTN Fiber", Type: "internet", Description: "Fiber optic internet services"},
	{ID: "vodafone-fiber", Name: "Vodafone Fiber", Type: "internet", Description: "High-speed broadband services"},
	{ID: "surfline", Name: "Surfline", Type: "internet", Description: "4G LTE internet services"},
	{ID: "dstv", Name: "DSTV", Type: "tv", Description: "Premium satellite TV service"},
	{ID: "gotv", Name: "GOTV", Type: "tv", Description: "Digital terrestrial TV service"},
	{ID: "startimes", Name: "StarTimes", Type: "tv", Description: "Affordable digital TV service"},
}

var recentPayments = []domain.RecentPayment{
	{ID: "1", ProviderName: "Electricity Company of Ghana", Account: "12345678901", Amount: "₵150.00", Date: "05/05/2023", Type: "electricity"},
	{ID: "2", ProviderName: "Ghana Water Company Ltd", Account: "98765432101", Amount: "₵85.00", Date: "01/05/2023", Type: "water"},
	{ID: "3", ProviderName: "DSTV", Account: "567890123", Amount: "₵220.00", Date: "28/04/2023", Type: "tv"},
}

var contacts = []domain.Contact{
	{ID: "1", Name: "Alex Johnson", PhoneNumber: "+233 50 123 4567", AccountNumber: "FL78901234", AvatarURL: "https://api.dicebear.com/7.x/adventurer/svg?seed=Alex", RecentTransaction: true},
	{ID: "2", Name: "Sophia Chen", PhoneNumber: "+233 55 987 6543", AccountNumber: "FL45678901", AvatarURL: "https://api.dicebear.com/7.x/adventurer/svg?seed=Sophia", RecentTransaction: true},
	{ID: "3", Name: "Marcus Williams", PhoneNumber: "+233 24 555 7890", AccountNumber: "FL12345678", AvatarURL: "https://api.dicebear.com/7.x/adventurer/svg?seed=Marcus"},
	{ID: "4", Name: "Liam Kumar", PhoneNumber: "+233 27 321 9876", AccountNumber: "FL23456789", AvatarURL: "https://api.dicebear.com/7.x/adventurer/svg?seed=Liam"},
	{ID: "5", Name: "Emma Wilson", PhoneNumber: "+233 20 456 7890", AccountNumber: "FL34567890", AvatarURL: "https://api.dicebear.com/7.x/adventurer/svg?seed=Emma"},
}

var walletCurrencies = []domain.WalletCurrency{
	{ID: domain.NGN, Name: "Nigerian Naira", Symbol: "₦", Balance: d("250000.00")},
	{ID: domain.GHC, Name: "Ghanaian Cedi", Symbol: "₵", Balance: d("15000.00")},
	{ID: domain.USDT, Name: "Tether USD", Symbol: "USDT", Balance: d("1250.00")},
	{ID: domain.BTC, Name: "Bitcoin", Symbol: "BTC", Balance: d("0.0125")},
	{ID: domain.BUSD, Name: "Binance USD", Symbol: "BUSD", Balance: d("2500.00")},
}

var walletTransactions = []domain.WalletTransaction{
	{ID: "tx1", Type: "deposit", Title: "Wallet Funding", Amount: "₦100,000.00", Date: "2023-10-13", Time: "16:20", Status: "success", Currency: domain.NGN, Recipient: "Bank Transfer", Description: "Deposit via Access Bank", Direction: "incoming"},
	{ID: "tx2", Type: "withdrawal", Title: "Withdrawal to Bank", Amount: "₦50,000.00", Date: "2023-10-12", Time: "14:30", Status: "success", Currency: domain.NGN, Recipient: "GTBank - 0123456789", Description: "Withdrawal to GTBank account", Direction: "outgoing"},
	{ID: "tx3", Type: "conversion", Title: "Currency Exchange", Amount: "₦200,000.00 → $400.00", Date: "2023-10-11", Time: "10:15", Status: "success", Currency: domain.NGN, Recipient: "USDT", Description: "Converted NGN to USDT", Direction: "outgoing"},
	{ID: "tx4", Type: "airtime", Title: "Airtime Recharge", Amount: "₦5,000.00", Date: "2023-10-10", Time: "08:45", Status: "success", Currency: domain.NGN, Recipient: "+234 812 345 6789", Description: "Airtime purchase for MTN", Direction: "outgoing"},
	{ID: "tx5", Type: "cryptocurrency", Title: "BTC Purchase", Amount: "USDT 500.00 → BTC 0.015", Date: "2023-10-09", Time: "21:30", Status: "success", Currency: domain.USDT, Recipient: "Internal Wallet", Description: "Purchased BTC with USDT", Direction: "outgoing"},
}
