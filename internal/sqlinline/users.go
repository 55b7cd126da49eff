package sqlinline

const QInsertUserIfAbsent = `--sql bdc46772-6742-49f1-b6eb-9e1224c402fd
insert into users (id, email, name, photo_url, role, properties, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, coalesce($5::jsonb, '{}'::jsonb), now(), now())
on conflict (email) do nothing
returning id;
`

const QSelectUserByEmail = `--sql 31332d71-b80e-4855-a84a-a3a083c7af5b
select id, email, name, photo_url, role, properties, created_at, updated_at
from users
where email = $1::text
limit 1;
`

const QSelectUserRoleByEmail = `--sql ff5e1d1d-a605-42d3-9a28-b60322297bd6
select coalesce(nullif(role, ''), 'user')
from users
where email = $1::text
limit 1;
`

// Null patch fields leave the stored value alone; an explicit value (empty
// string included) replaces it. The where clause skips no-op writes so the
// handler can report "No changes made" off rows affected.
const QUpdateUserProfile = `--sql 3648e5c8-adfc-4ccc-9f0d-cab6b5ab1954
update users
set name = coalesce($2::text, name),
    photo_url = coalesce($3::text, photo_url),
    properties = users.properties || coalesce($4::jsonb, '{}'::jsonb),
    updated_at = now()
where email = $1::text
  and (coalesce($2::text, name) is distinct from name
       or coalesce($3::text, photo_url) is distinct from photo_url
       or users.properties || coalesce($4::jsonb, '{}'::jsonb) is distinct from users.properties);
`
